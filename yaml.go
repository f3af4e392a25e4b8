package civil

/*
yaml.go implements the YAML encoding of the types of this package, each
written as a scalar holding its canonical text form.
*/

import "gopkg.in/yaml.v3"

func yamlScalar(n *yaml.Node, typ string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		debugCodec(newLItem(typ, "yaml"), newLItem(int(n.Kind), "kind"))
		return "", codecErrorf("YAML: ", typ, " requires a scalar node (line ", n.Line, ")")
	}
	return n.Value, nil
}

// MarshalYAML returns the canonical form of the receiver instance.
func (r DateTime) MarshalYAML() (any, error) { return r.String(), nil }

// UnmarshalYAML parses a scalar node per [ParseDateTime].
func (r *DateTime) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(n, "DATE-TIME")
	if err == nil {
		err = r.UnmarshalText([]byte(s))
	}
	return err
}

// MarshalYAML returns the canonical form of the receiver instance.
func (r Date) MarshalYAML() (any, error) { return r.String(), nil }

// UnmarshalYAML parses a scalar node per [ParseDate].
func (r *Date) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(n, "DATE")
	if err == nil {
		err = r.UnmarshalText([]byte(s))
	}
	return err
}

// MarshalYAML returns the canonical form of the receiver instance.
func (r Time) MarshalYAML() (any, error) { return r.String(), nil }

// UnmarshalYAML parses a scalar node per [ParseTime].
func (r *Time) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(n, "TIME")
	if err == nil {
		err = r.UnmarshalText([]byte(s))
	}
	return err
}

// MarshalYAML returns the ISO 8601 form of the receiver instance.
func (r Duration) MarshalYAML() (any, error) { return r.String(), nil }

// UnmarshalYAML parses a scalar node per [ParseDuration].
func (r *Duration) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(n, "DURATION")
	if err == nil {
		err = r.UnmarshalText([]byte(s))
	}
	return err
}
