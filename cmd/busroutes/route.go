package main

// Run executes the route command.
func (c *RouteCmd) Run(deps *Dependencies) error {
	return showRoute(deps, c.ID)
}
