package rxparse

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config map[string]*cfgVal

// NewConfig creates a new configuration object primed with all the
// default values expected by the logging setup and the command line
// tools.
func NewConfig() *Config {
	m := make(Config)
	// commonlog verbosity; each step lets a more detailed level
	// through and parser tracing needs the debug one
	m.SetInt("log.verbosity", 0)
	// log file; stderr when empty
	m.SetString("log.path", "")
	// log every attempt of labelled parsers at debug level
	m.SetBool("trace.parsers", false)
	// highlight matches with ANSI colors
	m.SetBool("output.color", true)
	// stop after this many ambiguous matches; -1 for no limit
	m.SetInt("find.max_count", -1)
	return &m
}

// Debug writes every setting with its value to w
func (c *Config) Debug(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := make([]string, 0, len(*c))
	width := 0
	for k := range *c {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s%s : %s\n", k, strings.Repeat(" ", width-len(k)), (*c)[k])
	}
}

// LoadYAML merges the settings found in a YAML document into c.  Nested
// mappings are flattened into dotted paths, so
//
//	log:
//	  verbosity: 2
//
// sets `log.verbosity`.  Only settings that already exist can be
// assigned, and only with a value of their own type.
func (c *Config) LoadYAML(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("can't parse configuration: %w", err)
	}
	return c.merge("", doc)
}

func (c *Config) merge(prefix string, doc map[string]any) error {
	for k, v := range doc {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			if err := c.merge(path, nested); err != nil {
				return err
			}
			continue
		}
		current, ok := (*c)[path]
		if !ok {
			return fmt.Errorf("unknown setting `%s`", path)
		}
		switch current.typ {
		case cfgValType_Bool:
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("setting `%s` expects a bool, got %v", path, v)
			}
			c.SetBool(path, b)
		case cfgValType_Int:
			i, ok := v.(int)
			if !ok {
				return fmt.Errorf("setting `%s` expects an int, got %v", path, v)
			}
			c.SetInt(path, i)
		case cfgValType_String:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("setting `%s` expects a string, got %v", path, v)
			}
			c.SetString(path, s)
		}
	}
	return nil
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

// assignType is mostly for preventing programming errors, it panics
// when a setting changes type
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (v *cfgVal) String() string {
	switch v.typ {
	case cfgValType_Bool:
		return fmt.Sprintf("%t (bool)", v.asBool)
	case cfgValType_Int:
		return fmt.Sprintf("%d (int)", v.asInt)
	case cfgValType_String:
		return fmt.Sprintf("%s (string)", v.asString)
	case cfgValType_Undefined:
		return "(undefined)"
	default:
		panic(fmt.Sprintf("unknown cfgVal type: %v", v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	c.slot(path).assignType(cfgValType_Bool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	c.slot(path).assignType(cfgValType_Int)
	(*c)[path].asInt = v
}

func (c *Config) SetString(path string, v string) {
	c.slot(path).assignType(cfgValType_String)
	(*c)[path].asString = v
}

func (c *Config) slot(path string) *cfgVal {
	if _, ok := (*c)[path]; !ok {
		(*c)[path] = &cfgVal{}
	}
	return (*c)[path]
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("Bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("Int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("String setting `%s` does not exist", path))
}
