package uix

import "strconv"

type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitVMin
	UnitVMax
	UnitVh
	UnitVw
)

var unitSuffix = map[Unit]string{
	UnitPx:      "px",
	UnitPercent: "%",
	UnitVMin:    "vmin",
	UnitVMax:    "vmax",
	UnitVh:      "vh",
	UnitVw:      "vw",
}

// Val is a dimension value. The zero Val is auto.
type Val struct {
	Unit  Unit
	Value float32
}

var Auto = Val{Unit: UnitAuto}

func Px(value float32) Val      { return Val{Unit: UnitPx, Value: value} }
func Percent(value float32) Val { return Val{Unit: UnitPercent, Value: value} }
func VMin(value float32) Val    { return Val{Unit: UnitVMin, Value: value} }
func VMax(value float32) Val    { return Val{Unit: UnitVMax, Value: value} }
func Vh(value float32) Val      { return Val{Unit: UnitVh, Value: value} }
func Vw(value float32) Val      { return Val{Unit: UnitVw, Value: value} }

func (v Val) IsAuto() bool {
	return v.Unit == UnitAuto
}

// String renders v in the attribute grammar, so that ParseVal(v.String()) == v.
func (v Val) String() string {
	if v.IsAuto() {
		return "auto"
	}
	return formatFloat(v.Value) + unitSuffix[v.Unit]
}

func (v Val) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func formatFloat(value float32) string {
	return strconv.FormatFloat(float64(value), 'g', -1, 32)
}
