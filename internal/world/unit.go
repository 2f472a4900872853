package world

// UnitType identifies a concrete unit type. AnyUnit is a filter sentinel
// that matches every type; it is never the type of a real unit.
type UnitType int32

const (
	AnyUnit UnitType = iota

	// Vehicles
	ConVec
	Scout
	Tank
	CargoTruck
	RoboMiner

	// Structures
	CommandCenter
	Factory
	Smelter
	Agridome
	Silo
	GuardPost

	// Other
	Projectile
)

// IsVehicle reports whether the type belongs to the vehicle list.
func (t UnitType) IsVehicle() bool {
	return t >= ConVec && t <= RoboMiner
}

// IsStructure reports whether the type belongs to the structure list.
func (t UnitType) IsStructure() bool {
	return t >= CommandCenter && t <= GuardPost
}

func (t UnitType) String() string {
	switch t {
	case AnyUnit:
		return "Any"
	case ConVec:
		return "ConVec"
	case Scout:
		return "Scout"
	case Tank:
		return "Tank"
	case CargoTruck:
		return "CargoTruck"
	case RoboMiner:
		return "RoboMiner"
	case CommandCenter:
		return "CommandCenter"
	case Factory:
		return "Factory"
	case Smelter:
		return "Smelter"
	case Agridome:
		return "Agridome"
	case Silo:
		return "Silo"
	case GuardPost:
		return "GuardPost"
	case Projectile:
		return "Projectile"
	}
	return "Unknown"
}

// UnitTypeByName resolves a type from its string name (for YAML data and
// Lua scripts). Returns AnyUnit, false for unknown names.
func UnitTypeByName(name string) (UnitType, bool) {
	for t := ConVec; t <= Projectile; t++ {
		if t.String() == name {
			return t, true
		}
	}
	if name == "Any" {
		return AnyUnit, true
	}
	return AnyUnit, false
}

// Category selects which per-player list a traversal walks.
type Category int32

const (
	AllUnits   Category = iota // every unit the player owns
	Vehicles                   // vehicle list only
	Structures                 // structure list only
)

// Unit is a value snapshot of a directory record. Two snapshots with the
// same ID refer to the same simulation object even if taken at different
// times. The zero Unit is the "no unit" sentinel.
type Unit struct {
	ID    int32
	Type  UnitType
	Owner int32
	Loc   Location
	HP    int32
}

// IsZero reports whether u is the "no unit" sentinel.
func (u Unit) IsZero() bool {
	return u == Unit{}
}
