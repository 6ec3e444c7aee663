package contract

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// convertArgs turns positional string inputs into the Go values abi packing expects
func convertArgs(params abi.Arguments, args []string) ([]interface{}, error) {
	if len(args) != len(params) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(params), len(args))
	}

	values := make([]interface{}, len(params))
	for i, p := range params {
		v, err := convertArg(p.Type, args[i])
		if err != nil {
			name := p.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, p.Type.String(), err)
		}
		values[i] = v
	}
	return values, nil
}

func convertArg(t abi.Type, raw string) (interface{}, error) {
	if t.T != abi.StringTy {
		raw = strings.TrimSpace(raw)
	}

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("invalid address %q", raw)
		}
		return common.HexToAddress(raw), nil

	case abi.UintTy, abi.IntTy:
		return convertInteger(t, raw)

	case abi.BoolTy:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", raw)
		}
		return b, nil

	case abi.StringTy:
		return raw, nil

	case abi.BytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bytes %q: %w", raw, err)
		}
		return b, nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bytes%d %q: %w", t.Size, raw, err)
		}
		if len(b) > t.Size {
			return nil, fmt.Errorf("value too long for bytes%d", t.Size)
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	default:
		return nil, fmt.Errorf("unsupported argument type %s", t.String())
	}
}

// convertInteger returns the exact Go type for widths up to 64 bits and *big.Int above
func convertInteger(t abi.Type, raw string) (interface{}, error) {
	n, ok := new(big.Int).SetString(raw, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", raw)
	}

	var minV, maxV *big.Int
	if t.T == abi.UintTy {
		minV = big.NewInt(0)
		maxV = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(t.Size)), big.NewInt(1)) //nolint:gosec,G115
	} else {
		half := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1)) //nolint:gosec,G115
		minV = new(big.Int).Neg(half)
		maxV = new(big.Int).Sub(half, big.NewInt(1))
	}
	if n.Cmp(minV) < 0 || n.Cmp(maxV) > 0 {
		return nil, fmt.Errorf("value %s out of range for %s", n.String(), t.String())
	}

	if t.Size > 64 {
		return n, nil
	}

	goType := t.GetType()
	if t.T == abi.UintTy {
		return reflect.ValueOf(n.Uint64()).Convert(goType).Interface(), nil
	}
	return reflect.ValueOf(n.Int64()).Convert(goType).Interface(), nil
}

// formatValue renders a decoded ABI value for display
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case *big.Int:
		return val.String()
	case common.Address:
		return val.Hex()
	case []byte:
		return hexutil.Encode(val)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return hexutil.Encode(b)
	}
	return fmt.Sprint(v)
}
