package urdf

import (
	"encoding/xml"
	"math"

	"github.com/golang/geo/r3"

	"github.com/hiwinstudio/urdfkit/utils"
)

// robotXML mirrors the subset of the URDF schema this package supports.
type robotXML struct {
	XMLName xml.Name   `xml:"robot"`
	Name    string     `xml:"name,attr"`
	Links   []linkXML  `xml:"link"`
	Joints  []jointXML `xml:"joint"`
}

type linkXML struct {
	XMLName xml.Name    `xml:"link"`
	Name    string      `xml:"name,attr"`
	Visuals []visualXML `xml:"visual"`
}

type visualXML struct {
	XMLName  xml.Name    `xml:"visual"`
	Origin   *poseXML    `xml:"origin,omitempty"`
	Geometry geometryXML `xml:"geometry"`
}

type geometryXML struct {
	XMLName xml.Name `xml:"geometry"`
	Mesh    *meshXML `xml:"mesh,omitempty"`
}

type meshXML struct {
	XMLName  xml.Name `xml:"mesh"`
	Filename string   `xml:"filename,attr"`
	Scale    string   `xml:"scale,attr"`
}

type jointXML struct {
	XMLName xml.Name  `xml:"joint"`
	Name    string    `xml:"name,attr"`
	Type    string    `xml:"type,attr"`
	Parent  *frameXML `xml:"parent,omitempty"`
	Child   *frameXML `xml:"child,omitempty"`
	Origin  *poseXML  `xml:"origin,omitempty"`
	Axis    *axisXML  `xml:"axis,omitempty"`
	Limit   *limitXML `xml:"limit,omitempty"`
}

type frameXML struct {
	Link string `xml:"link,attr"`
}

// poseXML holds the space-delimited xyz and rpy attributes of an origin
// element. Both default to zero when omitted.
type poseXML struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

type axisXML struct {
	XYZ string `xml:"xyz,attr"`
}

type limitXML struct {
	Lower float64 `xml:"lower,attr"`
	Upper float64 `xml:"upper,attr"`
}

// vector3 parses a space-delimited attribute into a vector, falling back to
// the given default when the attribute is absent or does not hold three
// usable numbers.
func vector3(attr string, def r3.Vector) r3.Vector {
	fields := utils.SpaceDelimitedStringToFloatSlice(attr)
	if len(fields) != 3 {
		return def
	}
	for _, f := range fields {
		if math.IsNaN(f) {
			return def
		}
	}
	return r3.Vector{X: fields[0], Y: fields[1], Z: fields[2]}
}
