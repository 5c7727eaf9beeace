package registry

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Stringify renders a value's raw data the way the results pane's data
// column does, per spec.md §6. A Provider is expected to have already
// decoded any platform-specific text encoding (e.g. UTF-16LE) into UTF-8
// bytes before this is called; this function performs the lossy-UTF-8 /
// fixed-width-decode step described by the table itself.
func Stringify(kind ValueKind, data []byte) string {
	switch kind {
	case KindSZ, KindExpandSZ:
		return lossyUTF8(data)

	case KindBinary:
		return fmt.Sprintf("BIN_LENGTH: %d", len(data))

	case KindDWord:
		if len(data) != 4 {
			return "Invalid REG_DWORD"
		}
		return fmt.Sprintf("%d", binary.LittleEndian.Uint32(data))

	case KindDWordBigEndian:
		if len(data) != 4 {
			return "Invalid REG_DWORD_BIG_ENDIAN"
		}
		return fmt.Sprintf("%d", binary.BigEndian.Uint32(data))

	case KindQWord:
		if len(data) != 8 {
			return "Invalid REG_QWORD"
		}
		return fmt.Sprintf("%d", binary.LittleEndian.Uint64(data))

	case KindMultiSZ, KindResourceList:
		parts := splitNUL(data)
		decoded := make([]string, len(parts))
		for i, p := range parts {
			decoded[i] = lossyUTF8(p)
		}
		return strings.Join(decoded, ", ")

	case KindLink, KindFullResourceDescriptor, KindResourceRequirementsList:
		return fmt.Sprintf("BIN_LENGTH: %d", len(data))

	case KindNone:
		return "None"

	default:
		return fmt.Sprintf("BIN_LENGTH: %d", len(data))
	}
}

func splitNUL(data []byte) [][]byte {
	var parts [][]byte
	start := 0
	for i, b := range data {
		if b == 0x00 {
			if i > start {
				parts = append(parts, data[start:i])
			}
			start = i + 1
		}
	}
	if start < len(data) {
		parts = append(parts, data[start:])
	}
	return parts
}

func lossyUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
