package decimal

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes d as a double-quoted string scalar so YAML readers
// cannot resolve it back into a binary float.
func (d Decimal) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Value: d.String(),
	}, nil
}

// UnmarshalYAML decodes a string, integer or float scalar into d with the
// same shape contract as UnmarshalJSON. Every other node fails with
// ErrInvalidValue.
func (d *Decimal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a Decimal value, got a non-scalar node", ErrInvalidValue)
	}
	switch node.Tag {
	case "!!str":
		return d.setFromString(node.Value)
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			d.val = FromInt64(i).val
			return nil
		}
		if u, err := strconv.ParseUint(node.Value, 10, 64); err == nil {
			d.val = FromUint64(u).val
			return nil
		}
		// Integers beyond uint64 still carry exact decimal text.
		return d.setFromString(node.Value)
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q, expected a Decimal value", ErrInvalidValue, node.Value)
		}
		return d.setFromFloat(f)
	default:
		return fmt.Errorf("%w: expected a Decimal value, got %s scalar", ErrInvalidValue, node.Tag)
	}
}
