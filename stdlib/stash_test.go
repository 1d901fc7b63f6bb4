package stdlib

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStash(t *testing.T) {
	stash := NewStash()

	var placeholders []string
	for i := 0; i < 12; i++ {
		placeholders = append(placeholders, stash.Put(fmt.Sprintf("<m%d>*x*</m%d>", i, i)))
	}

	assert.Equal(t, "MATHTEXSTASH0X", placeholders[0])
	assert.Equal(t, "MATHTEXSTASH11X", placeholders[11])

	assert.Equal(t,
		"a <m1>*x*</m1> b <m10>*x*</m10> c <m1>*x*</m1>",
		stash.Restore("a "+placeholders[1]+" b "+placeholders[10]+" c "+placeholders[1]),
	)

	assert.Equal(t, "untouched", NewStash().Restore("untouched"))
}

func TestExecute_Stash(t *testing.T) {
	lib, _ := newTestLib(t, nil)
	lib.Stash = NewStash()

	page, err := lib.Execute("page", []byte(`x {{ mathtex "literal" "a*b" }} y`), nil)
	require.NoError(t, err)
	assert.Equal(t, "x MATHTEXSTASH0X y", string(page))

	assert.Equal(t, "<p>x [inline:a*b] y</p>", lib.Stash.Restore("<p>"+string(page)+"</p>"))
}
