package tinyinput

import (
	"encoding"
	"fmt"
	"strconv"
)

// parseInto assigns the parsed form of text to the value behind target.
// Built-in targets use their canonical strconv grammar; every other type must
// implement encoding.TextUnmarshaler. Callers only inspect the returned error
// for nil-ness — Read collapses all parse diagnostics into KindParse.
func parseInto(target any, text string) error {
	switch value := target.(type) {
	case *string:
		*value = text
		return nil
	case *bool:
		parsed, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		*value = parsed
		return nil
	case *int:
		parsed, err := strconv.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*value = int(parsed)
		return nil
	case *int8:
		parsed, err := strconv.ParseInt(text, 10, 8)
		if err != nil {
			return err
		}
		*value = int8(parsed)
		return nil
	case *int16:
		parsed, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return err
		}
		*value = int16(parsed)
		return nil
	case *int32:
		parsed, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return err
		}
		*value = int32(parsed)
		return nil
	case *int64:
		parsed, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return err
		}
		*value = parsed
		return nil
	case *uint:
		parsed, err := strconv.ParseUint(text, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*value = uint(parsed)
		return nil
	case *uint8:
		parsed, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return err
		}
		*value = uint8(parsed)
		return nil
	case *uint16:
		parsed, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return err
		}
		*value = uint16(parsed)
		return nil
	case *uint32:
		parsed, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return err
		}
		*value = uint32(parsed)
		return nil
	case *uint64:
		parsed, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return err
		}
		*value = parsed
		return nil
	case *float32:
		parsed, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return err
		}
		*value = float32(parsed)
		return nil
	case *float64:
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		*value = parsed
		return nil
	}

	if unmarshaler, ok := target.(encoding.TextUnmarshaler); ok {
		return unmarshaler.UnmarshalText([]byte(text))
	}

	panic(fmt.Sprintf("tinyinput: unsupported target type %T", target))
}
