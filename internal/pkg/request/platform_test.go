package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	tests := []struct {
		name   string
		header string
		ua     string
		want   ClientType
	}{
		{"explicit_web", "web", "okhttp/4.9", ClientWeb},
		{"explicit_mobile", "Mobile", "Mozilla/5.0", ClientMobile},
		{"ios_alias", "ios", "", ClientMobile},
		{"browser_default", "", "Mozilla/5.0 (Macintosh)", ClientWeb},
		{"flutter_agent", "", "Dart/3.2 (dart:io)", ClientMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveClientType(tt.header, tt.ua))
		})
	}
}
