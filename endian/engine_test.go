package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	require.Equal(t, binary.LittleEndian, le)
	require.Equal(t, binary.BigEndian, be)
	require.False(t, IsBigEndian(le))
	require.True(t, IsBigEndian(be))

	require.Equal(t, []byte{0x10, 0xFC}, le.AppendUint16(nil, 0xFC10))
	require.Equal(t, []byte{0xFC, 0x10}, be.AppendUint16(nil, 0xFC10))
	require.Equal(t, uint32(0x01020304), be.Uint32([]byte{1, 2, 3, 4}))
	require.Equal(t, uint32(0x04030201), le.Uint32([]byte{1, 2, 3, 4}))
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name    string
		want    EndianEngine
		wantErr bool
	}{
		{"", binary.LittleEndian, false},
		{"little", binary.LittleEndian, false},
		{"LE", binary.LittleEndian, false},
		{"big", binary.BigEndian, false},
		{"Big_Endian", binary.BigEndian, false},
		{"middle", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEngine(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
