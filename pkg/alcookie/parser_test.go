package alcookie

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TypeDummying/AIuminum/pkg/cookie"
)

// frameSize renders a bare little endian length prefix.
func frameSize(size int32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, uint32(size))
	return out
}

func TestParseRecords(t *testing.T) {
	assert := assert.New(t)

	t.Run("EmptyPayload", func(t *testing.T) {
		cookies, err := ParseRecords(nil)
		assert.NoError(err)
		assert.Empty(cookies)
	})

	t.Run("Walk", func(t *testing.T) {
		want := []cookie.Cookie{
			{Domain: "a.example.com", Name: "first", Value: "1", Path: "/", Expires: 100},
			{Domain: "b.example.com", Name: "second", Value: "2", Path: "/b", Expires: 200, Secure: true},
			{Domain: "c.example.com", Name: "third", Value: "3", Path: "/c", Expires: 300, HttpOnly: true},
		}

		var payload bytes.Buffer
		for _, c := range want {
			payload.Write(frameRecord(encodeRecord(c)))
		}

		got, err := ParseRecords(payload.Bytes())
		assert.NoError(err)
		assert.Equal(want, got, "records must come back in payload order")
	})

	t.Run("MaxRecordSize", func(t *testing.T) {
		c := cookie.Cookie{Domain: "example.com", Name: "big", Path: "/", Expires: 1}

		// Pad the value until the body sits exactly on the limit.
		c.Value = strings.Repeat("v", MaxRecordSize-len(encodeRecord(c)))
		body := encodeRecord(c)
		assert.Len(body, MaxRecordSize)

		got, err := ParseRecords(frameRecord(body))
		assert.NoError(err)
		assert.Equal([]cookie.Cookie{c}, got)
	})

	t.Run("StrayBytes", func(t *testing.T) {
		payload := frameRecord(encodeRecord(cookie.Cookie{Domain: "example.com", Name: "n"}))
		payload = append(payload, 0x01, 0x02, 0x03)

		_, err := ParseRecords(payload)
		assert.Error(err)
		assert.ErrorIs(err, ErrTruncatedRecord)
	})
}

func TestParseRecordSizes(t *testing.T) {
	assert := assert.New(t)

	t.Run("Zero", func(t *testing.T) {
		_, err := ParseRecords(frameSize(0))
		assert.Error(err)
		assert.ErrorIs(err, ErrInvalidRecordSize)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := ParseRecords(frameSize(-1))
		assert.Error(err)
		assert.ErrorIs(err, ErrInvalidRecordSize)
	})

	t.Run("Oversize", func(t *testing.T) {
		payload := append(frameSize(5000), make([]byte, 5000)...)

		_, err := ParseRecords(payload)
		assert.Error(err)
		assert.ErrorIs(err, ErrInvalidRecordSize)
	})

	t.Run("JustOverLimit", func(t *testing.T) {
		payload := append(frameSize(MaxRecordSize+1), make([]byte, MaxRecordSize+1)...)

		_, err := ParseRecords(payload)
		assert.Error(err)
		assert.ErrorIs(err, ErrInvalidRecordSize)
	})

	t.Run("ShortBody", func(t *testing.T) {
		payload := append(frameSize(100), make([]byte, 10)...)

		_, err := ParseRecords(payload)
		assert.Error(err)
		assert.ErrorIs(err, ErrTruncatedRecord)
	})
}

func TestParseRecordBodies(t *testing.T) {
	assert := assert.New(t)

	valid := cookie.Cookie{Domain: "example.com", Name: "sid", Value: "v", Path: "/", Expires: 1}

	t.Run("MissingTerminator", func(t *testing.T) {
		body := encodeRecord(valid)
		body = body[:len(body)-1]

		_, err := ParseRecords(frameRecord(body))
		assert.Error(err)
		assert.ErrorIs(err, ErrMalformedRecord)
	})

	t.Run("SixFields", func(t *testing.T) {
		body := encodeRecord(valid)

		// Chop the whole trailing httpOnly field off.
		body = body[:len(body)-2]

		_, err := ParseRecords(frameRecord(body))
		assert.Error(err)
		assert.ErrorIs(err, ErrMalformedRecord)
	})

	t.Run("TrailingBytes", func(t *testing.T) {
		body := append(encodeRecord(valid), 'x')

		_, err := ParseRecords(frameRecord(body))
		assert.Error(err)
		assert.ErrorIs(err, ErrMalformedRecord)
	})

	t.Run("EmptyDomain", func(t *testing.T) {
		c := valid
		c.Domain = ""

		_, err := ParseRecords(frameRecord(encodeRecord(c)))
		assert.Error(err)
		assert.ErrorIs(err, ErrMalformedRecord)
	})

	t.Run("EmptyName", func(t *testing.T) {
		c := valid
		c.Name = ""

		_, err := ParseRecords(frameRecord(encodeRecord(c)))
		assert.Error(err)
		assert.ErrorIs(err, ErrMalformedRecord)
	})

	t.Run("EmptyValueAndPath", func(t *testing.T) {
		c := valid
		c.Value = ""
		c.Path = ""

		got, err := ParseRecords(frameRecord(encodeRecord(c)))
		assert.NoError(err)
		assert.Equal([]cookie.Cookie{c}, got)
	})

	t.Run("BadExpires", func(t *testing.T) {
		for _, expires := range []string{"abc", "", "12x", "1.5", "9999999999999999999999"} {
			body := []byte("example.com\x00sid\x00v\x00/\x00" + expires + "\x000\x000\x00")

			_, err := ParseRecords(frameRecord(body))
			assert.Error(err)
			assert.ErrorIs(err, ErrMalformedExpires)
		}
	})

	t.Run("NegativeExpires", func(t *testing.T) {
		c := valid
		c.Expires = -1

		got, err := ParseRecords(frameRecord(encodeRecord(c)))
		assert.NoError(err)
		assert.Equal(int64(-1), got[0].Expires)
	})

	t.Run("BadFlag", func(t *testing.T) {
		for _, flags := range [][2]string{{"true", "0"}, {"0", "false"}, {"2", "0"}, {"1", "yes"}, {"", "0"}} {
			body := []byte("example.com\x00sid\x00v\x00/\x001\x00" + flags[0] + "\x00" + flags[1] + "\x00")

			_, err := ParseRecords(frameRecord(body))
			assert.Error(err)
			assert.ErrorIs(err, ErrMalformedFlag)
		}
	})
}
