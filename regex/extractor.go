package regex

import (
	"errors"

	"github.com/fwojciec/busroutes"
)

// Patterns for the schedule index page.
const (
	// A city section runs from an <h3> to the first <hr or the
	// RoutesByRoute container, whichever comes first. A trailing <h3> with
	// neither terminator after it is not a section.
	CitySectionPattern = `(?s)<h3>.*?(?:<hr|<div id="RoutesByRoute")`

	// The city name is the text of the first <h3> in the section.
	CityNamePattern = `(?s)<h3>(.*?)</h3>`

	// Each link's text in the section is a bus number.
	BusNumberPattern = `(?s)<a href.*?>(.*?)</a>`
)

// Patterns for a route page.
const (
	// The route map runs from the RouteMap container to the first row
	// marker after it. Only the first such region is used.
	RouteMapPattern = `(?s)<div id="RouteMap".*?<div class="" data-sf-element="Row">`

	// A destination block starts at its weekday label and ends at the
	// first </thead> after it.
	DestinationPattern = `(?s)Weekday<small>(.*?)</small>(.*?)</thead>`

	// Stop numbers are the styled <strong> badges in a destination block.
	StopNumberPattern = `(?s)<strong class=.*?>(.*?)</strong>`

	// Stop names are the <p> elements in a destination block.
	StopNamePattern = `(?s)<p>(.*?)</p>`
)

// Ensure Extractor implements the extractor interfaces at compile time.
var (
	_ busroutes.CityExtractor        = (*Extractor)(nil)
	_ busroutes.DestinationExtractor = (*Extractor)(nil)
)

// Extractor runs the index and route extraction pipelines.
// It holds only compiled patterns and is safe to reuse.
type Extractor struct {
	citySections *Isolator
	cityName     *Field
	busNumbers   *Field

	routeMap     *Isolator
	destinations *BlockSplitter
	stopNumbers  *Field
	stopNames    *Field
}

// NewExtractor creates an Extractor with the schedule site's patterns.
func NewExtractor() *Extractor {
	stopNames := NewField(StopNamePattern)
	stopNames.Decode = DecodeAmp

	return &Extractor{
		citySections: NewIsolator(CitySectionPattern, -1),
		cityName:     NewField(CityNamePattern),
		busNumbers:   NewField(BusNumberPattern),

		routeMap:     NewIsolator(RouteMapPattern, 1),
		destinations: NewBlockSplitter(DestinationPattern),
		stopNumbers:  NewField(StopNumberPattern),
		stopNames:    stopNames,
	}
}

// ExtractCities returns one city per index section that has a non-empty
// heading, in page order. Sections without a heading are skipped.
func (e *Extractor) ExtractCities(text string) []busroutes.City {
	var cities []busroutes.City
	for _, section := range e.citySections.Isolate(text) {
		if c, ok := e.assembleCity(section); ok {
			cities = append(cities, c)
		}
	}
	return cities
}

// ExtractDestinations returns the destinations on a route page, in page
// order. A page with no route map yields no destinations and no error.
// Blocks whose stop numbers and stop names differ in count are left out;
// each one is reported as an *AlignmentError in the joined error.
func (e *Extractor) ExtractDestinations(text string) ([]busroutes.RouteDestination, error) {
	var (
		destinations []busroutes.RouteDestination
		errs         []error
	)
	for _, section := range e.routeMap.Isolate(text) {
		for _, block := range e.destinations.Split(section) {
			d, err := e.assembleDestination(block)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			destinations = append(destinations, d)
		}
	}
	return destinations, errors.Join(errs...)
}

func (e *Extractor) assembleCity(section string) (busroutes.City, bool) {
	name, ok := e.cityName.First(section)
	if !ok {
		return busroutes.City{}, false
	}
	c := busroutes.City{Name: name, BusNumbers: e.busNumbers.All(section)}
	if err := c.Validate(); err != nil {
		return busroutes.City{}, false
	}
	return c, true
}

func (e *Extractor) assembleDestination(block Block) (busroutes.RouteDestination, error) {
	return busroutes.NewRouteDestination(block.Label,
		e.stopNumbers.All(block.Body),
		e.stopNames.All(block.Body),
	)
}
