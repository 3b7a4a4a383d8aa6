package rewear

import (
	"net/url"
	"strconv"
)

// Params представляет произвольный набор параметров запроса.
// Значения nil и пустые строки при сборке опускаются; ноль сохраняется.
type Params map[string]any

// BuildQuery собирает строку запроса из параметров
func BuildQuery(p Params) string {
	return buildValues(p).Encode()
}

func buildValues(p Params) url.Values {
	values := url.Values{}
	for key, v := range p {
		if v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t == "" {
				continue
			}
			values.Set(key, t)
		case bool:
			values.Set(key, strconv.FormatBool(t))
		case int:
			values.Set(key, strconv.Itoa(t))
		case int64:
			values.Set(key, strconv.FormatInt(t, 10))
		case float64:
			values.Set(key, strconv.FormatFloat(t, 'f', -1, 64))
		case *int:
			if t == nil {
				continue
			}
			values.Set(key, strconv.Itoa(*t))
		case *bool:
			if t == nil {
				continue
			}
			values.Set(key, strconv.FormatBool(*t))
		default:
			// Неожиданный тип пропускается, как undefined в исходном контракте
		}
	}
	return values
}

// ParseQuery разбирает строку запроса обратно в параметры.
// Числа и булевы значения приводятся к своим типам, остальное — строки.
func ParseQuery(qs string) Params {
	result := Params{}
	values, err := url.ParseQuery(qs)
	if err != nil {
		return result
	}
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		v := vs[0]
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			result[key] = f
			continue
		}
		if v == "true" || v == "false" {
			result[key] = v == "true"
			continue
		}
		result[key] = v
	}
	return result
}
