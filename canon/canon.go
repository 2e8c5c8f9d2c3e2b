/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package canon

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is one raw DynamoDB record.
type Item = map[string]types.AttributeValue

// Form is the canonical, order-erased encoding of a value. Forms are plain
// strings, so they are directly comparable and usable as map keys.
type Form string

// Canonicalize maps an item to its Form. Two items produce the same Form iff
// they are semantically equal, regardless of attribute insertion order or
// set-member order.
func Canonicalize(item Item) (Form, error) {
	return mapForm(item)
}

// ValueForm canonicalizes a single attribute value, applying the same rules
// recursively at every nesting depth.
func ValueForm(av types.AttributeValue) (Form, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return Form("S:" + strconv.Quote(v.Value)), nil

	case *types.AttributeValueMemberN:
		n, err := normalizeNumber(v.Value)
		if err != nil {
			return "", err
		}
		return Form("N:" + n), nil

	case *types.AttributeValueMemberB:
		return Form("B:" + base64.StdEncoding.EncodeToString(v.Value)), nil

	case *types.AttributeValueMemberBOOL:
		return Form("BOOL:" + strconv.FormatBool(v.Value)), nil

	case *types.AttributeValueMemberNULL:
		return Form("NULL"), nil

	case *types.AttributeValueMemberL:
		// List order is semantically significant and preserved.
		parts := make([]string, 0, len(v.Value))
		for _, el := range v.Value {
			f, err := ValueForm(el)
			if err != nil {
				return "", err
			}
			parts = append(parts, string(f))
		}
		return Form("L:[" + strings.Join(parts, ",") + "]"), nil

	case *types.AttributeValueMemberM:
		return mapForm(v.Value)

	case *types.AttributeValueMemberSS:
		parts := make([]string, 0, len(v.Value))
		for _, s := range v.Value {
			parts = append(parts, strconv.Quote(s))
		}
		sort.Strings(parts)
		return Form("SS:{" + strings.Join(parts, ",") + "}"), nil

	case *types.AttributeValueMemberNS:
		parts := make([]string, 0, len(v.Value))
		for _, s := range v.Value {
			n, err := normalizeNumber(s)
			if err != nil {
				return "", err
			}
			parts = append(parts, n)
		}
		sort.Strings(parts)
		return Form("NS:{" + strings.Join(parts, ",") + "}"), nil

	case *types.AttributeValueMemberBS:
		parts := make([]string, 0, len(v.Value))
		for _, b := range v.Value {
			parts = append(parts, base64.StdEncoding.EncodeToString(b))
		}
		sort.Strings(parts)
		return Form("BS:{" + strings.Join(parts, ",") + "}"), nil

	default:
		return "", fmt.Errorf("cannot canonicalize attribute value of type %T", av)
	}
}

// mapForm canonicalizes an attribute map by sorting entries by attribute
// name, erasing insertion order. Attribute names are unique within a map,
// so the sorted encoding is deterministic.
func mapForm(m Item) (Form, error) {
	parts := make([]string, 0, len(m))
	for k, av := range m {
		f, err := ValueForm(av)
		if err != nil {
			return "", fmt.Errorf("attribute %q: %w", k, err)
		}
		parts = append(parts, strconv.Quote(k)+"="+string(f))
	}
	sort.Strings(parts)
	return Form("M:{" + strings.Join(parts, ",") + "}"), nil
}

// normalizeNumber rewrites a DynamoDB number string into a canonical
// sign/digits/exponent encoding so that numerically equal strings ("1.0",
// "1", "10e-1") produce identical Forms. This mirrors the decimal value
// semantics the wire format implies.
func normalizeNumber(s string) (string, error) {
	orig := s
	if s == "" {
		return "", fmt.Errorf("empty number string")
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	mant := s
	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return "", fmt.Errorf("malformed number %q", orig)
		}
		mant = s[:i]
		exp = e
	}

	intPart, fracPart, _ := strings.Cut(mant, ".")
	digits := intPart + fracPart
	if digits == "" {
		return "", fmt.Errorf("malformed number %q", orig)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", fmt.Errorf("malformed number %q", orig)
		}
	}
	exp -= len(fracPart)

	digits = strings.TrimLeft(digits, "0")
	for len(digits) > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
		exp++
	}
	if digits == "" {
		// All zeros; sign and exponent are insignificant.
		return "0", nil
	}

	if neg {
		digits = "-" + digits
	}
	return digits + "E" + strconv.Itoa(exp), nil
}
