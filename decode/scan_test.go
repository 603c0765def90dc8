package decode

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScan_Empty(t *testing.T) {
	sc := Scan(strings.NewReader(""))
	tok := sc.Scan()
	assert.Equal(t, EOF, tok.Type)

	tok = sc.Scan()
	assert.Equal(t, EOF, tok.Type)
}

func TestScan_EmptyDecode(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewDecoder(strings.NewReader("")).Decode()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("decoding empty input does not terminate")
	}
}

func TestScan_Tokens(t *testing.T) {
	const doc = `serie "go" {
	fill "#4e79a7", "#f28e2c"
	label true
}
`
	var (
		sc   = Scan(strings.NewReader(doc))
		want = []rune{Keyword, Literal, Lcurly, EOL, Literal, Literal, Comma, Literal, EOL, Literal, Boolean, EOL, Rcurly, EOL, EOF}
	)
	for i, w := range want {
		tok := sc.Scan()
		assert.Equal(t, w, tok.Type, "token %d: %s", i, tok)
	}
}
