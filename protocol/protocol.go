// Package protocol defines the types necessary for unmarshalling a
// protocol-specification XML file. It also carries the description of
// the subset of the core protocol that the broker speaks.
package protocol

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed wayland.xml
var waylandXML string

var core = sync.OnceValues(func() (Protocol, error) {
	return Load(strings.NewReader(waylandXML))
})

// Core returns the embedded description of the core protocol
// interfaces that the broker implements.
func Core() (Protocol, error) {
	return core()
}

// Load decodes a protocol description from r.
func Load(r io.Reader) (proto Protocol, err error) {
	d := xml.NewDecoder(r)
	err = d.Decode(&proto)
	if err != nil {
		return proto, fmt.Errorf("decode protocol: %w", err)
	}
	return proto, nil
}

type Protocol struct {
	Name      string `xml:"name,attr"`
	Copyright string `xml:"copyright"`

	Interfaces []Interface `xml:"interface"`
}

// Interface returns the named interface.
func (p Protocol) Interface(name string) (Interface, bool) {
	for _, i := range p.Interfaces {
		if i.Name == name {
			return i, true
		}
	}
	return Interface{}, false
}

type Interface struct {
	Name        string      `xml:"name,attr"`
	Version     int         `xml:"version,attr"`
	Description Description `xml:"description"`

	Requests []Op   `xml:"request"`
	Events   []Op   `xml:"event"`
	Enums    []Enum `xml:"enum"`
}

type Description struct {
	Summary string `xml:"summary,attr"`
	Full    string `xml:",chardata"`
}

type Op struct {
	Name        string      `xml:"name,attr"`
	Type        string      `xml:"type,attr"`
	Since       int         `xml:"since,attr"`
	Description Description `xml:"description"`

	Args []Arg `xml:"arg"`
}

type Arg struct {
	Name    string `xml:"name,attr"`
	Summary string `xml:"summary,attr"`

	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
	Version   int    `xml:"version,attr"`
	AllowNull bool   `xml:"allow-null,attr"`
}

type Enum struct {
	Name        string      `xml:"name,attr"`
	Description Description `xml:"description"`

	Bitfield bool    `xml:"bitfield,attr"`
	Entries  []Entry `xml:"entry"`
}

type Entry struct {
	Name    string `xml:"name,attr"`
	Summary string `xml:"summary,attr"`
	Value   string `xml:"value,attr"`
}

func (e Entry) Int() (int, error) {
	v, err := strconv.ParseInt(e.Value, 0, 0)
	return int(v), err
}

// IsDestructor reports whether the op destroys the object that it is
// sent to.
func (op Op) IsDestructor() bool {
	return op.Type == "destructor"
}
