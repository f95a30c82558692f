package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/TypeDummying/AIuminum/pkg/alcookie"
	"github.com/TypeDummying/AIuminum/pkg/cookie"
)

// Path of the compiled incognito cookie archive the decompiler reads
// when no override is given.
const cookieFile = "aluminum_incognito_cookies.dat"

func main() {
	fmt.Println("Aluminum Browser Incognito Cookie Decompiler")
	fmt.Println("============================================")

	ko, err := initConfig()
	if err != nil {
		fatal(err)
	}

	path := ko.String("cookie.file")
	if path == "" {
		path = cookieFile
	}

	key, err := decodeKey(ko.String("cookie.key"))
	if err != nil {
		fatal(err)
	}

	cookies, err := alcookie.DecodeFile(path, key)
	if err != nil {
		fatal(fmt.Errorf("error decompiling cookies: %w", err))
	}

	printCookies(cookies)
	fmt.Printf("Total cookies decompiled: %d\n", len(cookies))
}

// decodeKey decodes a hex encoded key override into the raw bytes fed to
// the decoder. Without an override the all zero key is assumed, which is
// what the stock compiler encrypts with.
func decodeKey(s string) ([]byte, error) {
	key := make([]byte, alcookie.KeySize)
	if s == "" {
		return key, nil
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("error decoding cookie key: %w", err)
	}
	if len(raw) != alcookie.KeySize {
		return nil, fmt.Errorf("cookie key must be %d bytes, got %d", alcookie.KeySize, len(raw))
	}

	return raw, nil
}

func printCookies(cookies []cookie.Cookie) {
	rule := strings.Repeat("-", 50)

	fmt.Println("Decompiled Incognito Cookies for Aluminum Browser:")
	fmt.Println(rule)

	for _, c := range cookies {
		fmt.Printf("Domain:   %s\n", c.Domain)
		fmt.Printf("Name:     %s\n", c.Name)
		fmt.Printf("Value:    %s\n", c.Value)
		fmt.Printf("Path:     %s\n", c.Path)
		fmt.Printf("Expires:  %s\n", time.Unix(c.Expires, 0).Format("2006-01-02 15:04:05"))
		fmt.Printf("Secure:   %s\n", yesNo(c.Secure))
		fmt.Printf("HttpOnly: %s\n", yesNo(c.HttpOnly))
		fmt.Println(rule)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Fatal error:", err)
	os.Exit(1)
}
