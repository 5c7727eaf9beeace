// Package registry defines the platform-registry abstraction the crawl
// engine depends on, plus the value-stringification rules from the
// registry value data column (spec.md §6).
//
// The concrete platform API (cursor handles, live enumeration) is out of
// scope for this repository's core; Provider is the seam. winprovider
// binds it to golang.org/x/sys/windows/registry; mockprovider binds it to
// an in-memory tree used by the crawl-engine and supervisor tests.
package registry

// Hive is a tagged enumeration of the five standard registry roots.
// The integer tag is stable and used for ordering and wrap-around math.
type Hive int

const (
	ClassesRoot Hive = iota
	CurrentUser
	LocalMachine
	Users
	CurrentConfig

	hiveCount = 5
)

// hiveNames holds the canonical uppercase Windows identifiers, indexed by tag.
var hiveNames = [hiveCount]string{
	ClassesRoot:   "HKEY_CLASSES_ROOT",
	CurrentUser:   "HKEY_CURRENT_USER",
	LocalMachine:  "HKEY_LOCAL_MACHINE",
	Users:         "HKEY_USERS",
	CurrentConfig: "HKEY_CURRENT_CONFIG",
}

// Name returns the canonical uppercase Windows identifier for the hive.
func (h Hive) Name() string {
	if h < 0 || int(h) >= hiveCount {
		return ""
	}
	return hiveNames[h]
}

// Valid reports whether h is one of the five standard tags.
func (h Hive) Valid() bool {
	return h >= 0 && int(h) < hiveCount
}

// HiveFromTag converts an integer tag to a Hive. It is total over valid
// inputs and returns false for anything outside [0,4].
func HiveFromTag(tag int) (Hive, bool) {
	h := Hive(tag)
	if !h.Valid() {
		return 0, false
	}
	return h, true
}

// AllHives returns the five hives in tag order.
func AllHives() []Hive {
	return []Hive{ClassesRoot, CurrentUser, LocalMachine, Users, CurrentConfig}
}

// HiveCount is the number of standard hives, exported for cursor wrap-around math.
const HiveCount = hiveCount
