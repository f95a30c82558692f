package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/TypeDummying/AIuminum/pkg/search"
)

// Stock corpus the demo searches against. Real builds would plug a live
// index in, the demo fabricates plausible hits from these.
var (
	domains = []string{
		"aluminum-browser.dev", "example.com", "golangweekly.news",
		"cookiepedia.org", "websearch.io",
	}
	keywords = []string{
		"aluminum", "browser", "incognito", "cookies", "privacy",
		"search", "engine", "fast", "secure", "opensource",
	}
)

func main() {
	fmt.Print("Enter your search query for Aluminum browser: ")

	query, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && query == "" {
		fmt.Fprintln(os.Stderr, "Search error:", err)
		os.Exit(1)
	}

	eng, err := search.New(search.WithCorpus(domains, keywords))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Search error:", err)
		os.Exit(1)
	}
	eng.SetQuery(query)

	fmt.Println("Searching...")
	results, err := eng.Search(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Search error:", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return
	}

	rule := strings.Repeat("-", 40)

	fmt.Println("Search Results:")
	fmt.Println(rule)
	for _, r := range results {
		fmt.Printf("Title: %s\n", r.Title)
		fmt.Printf("URL: %s\n", r.URL)
		fmt.Printf("Relevance: %.2f\n", r.Relevance)
		fmt.Println(rule)
	}
}
