package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	s, ok := Find("babymong")
	assert.True(t, ok)
	assert.Equal(t, "베이비몽", s.Name)
	assert.Equal(t, "https://www.babymong.co.kr", s.URL)
	assert.Equal(t, TypeBoth, s.Type)

	_, ok = Find("no-such-shop")
	assert.False(t, ok)
}

func TestEnabledShops(t *testing.T) {
	enabled := EnabledShops()
	assert.NotEmpty(t, enabled)
	for _, s := range enabled {
		assert.True(t, s.Enabled)
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.URL)
	}
}

func TestShopsReturnsCopy(t *testing.T) {
	shops := Shops()
	original := shops[0].Name
	shops[0].Name = "mutated"

	again := Shops()
	assert.Equal(t, original, again[0].Name)
}
