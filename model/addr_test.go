package model_test

import (
	"testing"

	. "github.com/helmdb/go-driver/model"
	"github.com/stretchr/testify/require"
)

func TestAddr_Canonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		out  string
		netw string
	}{
		{"localhost", "localhost:28017", "tcp"},
		{"localhost:28018", "localhost:28018", "tcp"},
		{"EXAMPLE.com:28017", "example.com:28017", "tcp"},
		{"1.2.3.4", "1.2.3.4:28017", "tcp"},
		{"/tmp/helmdb.sock", "/tmp/helmdb.sock", "unix"},
		{"", "", "tcp"},
	}

	for _, test := range tests {
		a := Addr(test.in)
		require.Equal(t, Addr(test.out), a.Canonicalize(), "address %q", test.in)
		require.Equal(t, test.netw, a.Network(), "address %q", test.in)
	}
}
