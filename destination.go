package busroutes

// Stop is a single physical stop on a route.
type Stop struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// RouteDestination is one direction of travel on a route: the destination
// label and the stops served on the way, in route order. StopNumbers[i] and
// StopNames[i] describe the same stop.
type RouteDestination struct {
	Name        string   `json:"name"`
	StopNumbers []string `json:"stopNumbers"`
	StopNames   []string `json:"stopNames"`
}

// NewRouteDestination pairs stop numbers with stop names. It returns an
// *AlignmentError if the two sequences differ in length; no truncation or
// padding is performed.
func NewRouteDestination(name string, numbers, names []string) (RouteDestination, error) {
	if len(numbers) != len(names) {
		return RouteDestination{}, &AlignmentError{
			Destination: name,
			Numbers:     len(numbers),
			Names:       len(names),
		}
	}
	if numbers == nil {
		numbers = []string{}
	}
	if names == nil {
		names = []string{}
	}
	return RouteDestination{Name: name, StopNumbers: numbers, StopNames: names}, nil
}

// Stops returns the destination's stops as number/name pairs.
// Returns an *AlignmentError if StopNumbers and StopNames differ in length.
func (d RouteDestination) Stops() ([]Stop, error) {
	if len(d.StopNumbers) != len(d.StopNames) {
		return nil, &AlignmentError{
			Destination: d.Name,
			Numbers:     len(d.StopNumbers),
			Names:       len(d.StopNames),
		}
	}
	stops := make([]Stop, len(d.StopNumbers))
	for i := range stops {
		stops[i] = Stop{Number: d.StopNumbers[i], Name: d.StopNames[i]}
	}
	return stops, nil
}
