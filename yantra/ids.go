package yantra

import "fmt"

// PointID names one constructed point of the diagram.
//
// Triangle vertices are U (up) or D (down), then T (tip), M (base midpoint),
// L or R (base corners), then the layer, largest first. G points are triple
// intersections of sides, H, I, K, F and J points double intersections on
// the first to fourth paths.
type PointID int

const (
	UT1 PointID = iota
	UL1
	UR1
	UM1
	DT1
	DL1
	DR1
	DM1

	UT2
	UL2
	UR2
	DT2
	DL2
	DR2

	UT3
	UL3
	UR3
	UM3
	DT3
	DL3
	DR3

	UL4
	UR4
	DL4
	DR4
	DL5
	DR5

	NWG1
	NEG1
	SWG1
	SEG1
	NWG2
	NEG2
	SWG2
	SEG2
	NWG3
	NEG3
	SWG3
	SEG3
	NWG4
	NEG4
	SWG4
	SEG4
	WG
	EG

	WH1
	EH1
	NWH
	NEH
	SWH
	SEH

	WI1
	EI1
	WI2
	EI2
	WI3
	EI3

	WK
	EK
	NWF
	NEF
	SWF
	SEF

	WJ1
	EJ1
	WJ2
	EJ2
	WJ3
	EJ3

	Bindu

	numPointIDs
)

// noPoint marks an absent path endpoint.
const noPoint PointID = -1

var pointNames = [...]string{
	UT1: "UT1", UL1: "UL1", UR1: "UR1", UM1: "UM1",
	DT1: "DT1", DL1: "DL1", DR1: "DR1", DM1: "DM1",
	UT2: "UT2", UL2: "UL2", UR2: "UR2",
	DT2: "DT2", DL2: "DL2", DR2: "DR2",
	UT3: "UT3", UL3: "UL3", UR3: "UR3", UM3: "UM3",
	DT3: "DT3", DL3: "DL3", DR3: "DR3",
	UL4: "UL4", UR4: "UR4", DL4: "DL4", DR4: "DR4",
	DL5: "DL5", DR5: "DR5",
	NWG1: "NWG1", NEG1: "NEG1", SWG1: "SWG1", SEG1: "SEG1",
	NWG2: "NWG2", NEG2: "NEG2", SWG2: "SWG2", SEG2: "SEG2",
	NWG3: "NWG3", NEG3: "NEG3", SWG3: "SWG3", SEG3: "SEG3",
	NWG4: "NWG4", NEG4: "NEG4", SWG4: "SWG4", SEG4: "SEG4",
	WG: "WG", EG: "EG",
	WH1: "WH1", EH1: "EH1", NWH: "NWH", NEH: "NEH", SWH: "SWH", SEH: "SEH",
	WI1: "WI1", EI1: "EI1", WI2: "WI2", EI2: "EI2", WI3: "WI3", EI3: "EI3",
	WK: "WK", EK: "EK", NWF: "NWF", NEF: "NEF", SWF: "SWF", SEF: "SEF",
	WJ1: "WJ1", EJ1: "EJ1", WJ2: "WJ2", EJ2: "EJ2", WJ3: "WJ3", EJ3: "EJ3",
	Bindu: "Bindu",
}

func (id PointID) String() string {
	if id < 0 || id >= numPointIDs {
		return fmt.Sprintf("PointID(%d)", int(id))
	}
	return pointNames[id]
}

// PointIDs returns every identifier in declaration order.
func PointIDs() []PointID {
	ids := make([]PointID, numPointIDs)
	for i := range ids {
		ids[i] = PointID(i)
	}
	return ids
}
