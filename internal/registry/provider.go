package registry

// ValueKind mirrors the Windows registry value type codes. The numeric
// values align with the real REG_* constants so a provider can pass
// platform values through unchanged.
type ValueKind uint32

const (
	KindNone                     ValueKind = 0
	KindSZ                       ValueKind = 1
	KindExpandSZ                 ValueKind = 2
	KindBinary                   ValueKind = 3
	KindDWord                    ValueKind = 4
	KindDWordBigEndian           ValueKind = 5
	KindLink                     ValueKind = 6
	KindMultiSZ                  ValueKind = 7
	KindResourceList             ValueKind = 8
	KindFullResourceDescriptor   ValueKind = 9
	KindResourceRequirementsList ValueKind = 10
	KindQWord                    ValueKind = 11
)

// Tag returns the "(REG_XXX)" type tag used in result-line formatting.
func (k ValueKind) Tag() string {
	switch k {
	case KindNone:
		return "REG_NONE"
	case KindSZ:
		return "REG_SZ"
	case KindExpandSZ:
		return "REG_EXPAND_SZ"
	case KindBinary:
		return "REG_BINARY"
	case KindDWord:
		return "REG_DWORD"
	case KindDWordBigEndian:
		return "REG_DWORD_BIG_ENDIAN"
	case KindLink:
		return "REG_LINK"
	case KindMultiSZ:
		return "REG_MULTI_SZ"
	case KindResourceList:
		return "REG_RESOURCE_LIST"
	case KindFullResourceDescriptor:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case KindResourceRequirementsList:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case KindQWord:
		return "REG_QWORD"
	default:
		return "REG_UNKNOWN"
	}
}

// ValueRecord is one value under a key, as returned by a Provider.
type ValueRecord struct {
	Name string
	Kind ValueKind
	Data []byte
}

// Key is an open, read-only handle to a registry subkey.
type Key interface {
	// SubkeyNames lists the immediate child key names.
	SubkeyNames() ([]string, error)
	// Values lists the values directly under this key.
	Values() ([]ValueRecord, error)
	Close() error
}

// Provider is the platform registry API the crawl engine depends on.
// subkeyPath is backslash-separated and relative to hive; "" means the
// hive's own root.
type Provider interface {
	OpenKey(hive Hive, subkeyPath string) (Key, error)
}
