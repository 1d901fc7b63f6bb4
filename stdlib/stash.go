package stdlib

import (
	"fmt"
	"strings"
	"sync"
)

// Stash keeps rendered markup out of later passes over the page, such as
// markdown compilation, which would otherwise parse the text between tags.
// Placeholders consist of letters and digits only so markdown leaves them
// as they are.
type Stash struct {
	mutex  sync.Mutex
	prefix string
	values []string
}

func NewStash() *Stash {
	return &Stash{
		prefix: "MATHTEXSTASH",
	}
}

func (stash *Stash) Put(markup string) string {
	stash.mutex.Lock()
	defer stash.mutex.Unlock()

	stash.values = append(stash.values, markup)

	return stash.placeholder(len(stash.values) - 1)
}

func (stash *Stash) Restore(text string) string {
	stash.mutex.Lock()
	defer stash.mutex.Unlock()

	pairs := make([]string, 0, len(stash.values)*2)
	for i, value := range stash.values {
		pairs = append(pairs, stash.placeholder(i), value)
	}

	return strings.NewReplacer(pairs...).Replace(text)
}

// placeholder is terminated by X so that #1 is not a prefix of #10.
func (stash *Stash) placeholder(index int) string {
	return fmt.Sprintf("%s%dX", stash.prefix, index)
}
