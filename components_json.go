// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"encoding/json"
	"strconv"
	"strings"
)

var jsonParts = []string{`{"s":`, `,"m":`, `,"e":`, `}`}

// MarshalJSON renders the triple as a compact object, like
// {"s":1,"m":4503599627370496,"e":0}.
func (c Components64) MarshalJSON() ([]byte, error) {
	return componentsJSON(c.Sign, uint64(c.Significand), c.Exponent), nil
}

// UnmarshalJSON fills the triple from the object form. The result is not
// validated; invalid triples surface from Float64 only.
func (c *Components64) UnmarshalJSON(data []byte) error {
	var d struct {
		S int    `json:"s"`
		M uint64 `json:"m"`
		E int    `json:"e"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*c = Components64{Sign: d.S, Significand: d.M, Exponent: d.E}
	return nil
}

// MarshalJSON renders the triple as a compact object.
func (c Components32) MarshalJSON() ([]byte, error) {
	return componentsJSON(c.Sign, uint64(c.Significand), c.Exponent), nil
}

// UnmarshalJSON fills the triple from the object form without validating it.
func (c *Components32) UnmarshalJSON(data []byte) error {
	var d struct {
		S int    `json:"s"`
		M uint32 `json:"m"`
		E int    `json:"e"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*c = Components32{Sign: d.S, Significand: d.M, Exponent: d.E}
	return nil
}

func componentsJSON(sign int, significand uint64, exponent int) []byte {
	var builder strings.Builder
	builder.WriteString(jsonParts[0])
	builder.WriteString(strconv.Itoa(sign))
	builder.WriteString(jsonParts[1])
	builder.WriteString(strconv.FormatUint(significand, 10))
	builder.WriteString(jsonParts[2])
	builder.WriteString(strconv.Itoa(exponent))
	builder.WriteString(jsonParts[3])
	return []byte(builder.String())
}
