// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamed(t *testing.T) {
	assert.Equal(t, byte(Return), Named(NameReturn).Code())
	assert.Equal(t, byte(Return), Named(NameEnter).Code())
	assert.Equal(t, byte(Backspace), Named(NameDeleteBackward).Code())
	assert.Equal(t, Event{}, Named("F13"))
}

func TestControl(t *testing.T) {
	assert.True(t, Event{Text: "\b"}.Control())
	assert.True(t, Event{Text: "\r"}.Control())
	assert.False(t, Event{Text: "a"}.Control())
	assert.False(t, Event{Text: "é"}.Control())
	assert.False(t, Event{}.Control())
	assert.Equal(t, byte(0), Event{}.Code())
	assert.Equal(t, `key.Event{Text: "x"}`, Event{Text: "x"}.String())
	assert.Equal(t, "key.Event{Code: 8}", Event{Text: "\b"}.String())
}
