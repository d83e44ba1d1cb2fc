// Copyright 2020, 2023, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
)

// cellValue converts v into a value excelize stores natively.
// A nil result clears the cell. sql.Null* types arrive here as
// driver.Valuer and resolve to their value or nil.
func cellValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if vr, ok := v.(driver.Valuer); ok {
		vv, err := vr.Value()
		if err != nil {
			return nil, fmt.Errorf("%T: %w", v, err)
		}
		if v = vv; v == nil {
			return nil, nil
		}
	}
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return nil, nil
		}
		return x, nil
	case *time.Time:
		if x == nil || x.IsZero() {
			return nil, nil
		}
		return *x, nil
	case fluentsheet.Number:
		if x == "" {
			return nil, nil
		}
		f, err := x.Float64()
		if err != nil {
			return string(x), nil
		}
		return f, nil
	case string, []byte, bool, time.Duration,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return nil, fmt.Errorf("%T: %w", v, fluentsheet.ErrUnsupportedValue)
}
