package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Phone is a form phone number as sent by clients. It decodes from a JSON
// number or a numeric string, and from a urlencoded form value.
type Phone int64

// Int64 returns nil for a nil phone.
func (p *Phone) Int64() *int64 {
	if p == nil {
		return nil
	}
	v := int64(*p)
	return &v
}

func (p *Phone) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	return p.UnmarshalParam(raw)
}

// UnmarshalParam implements binding.BindUnmarshaler for form bodies. An
// empty value decodes to zero.
func (p *Phone) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		*p = 0
		return nil
	}
	if n, err := strconv.ParseInt(param, 10, 64); err == nil {
		*p = Phone(n)
		return nil
	}

	// Exponent forms such as 5.551234e6 still name an integer.
	f, err := strconv.ParseFloat(param, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("phone %q is not a number", param)
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("phone %q is not an integer", param)
	}
	*p = Phone(f)
	return nil
}
