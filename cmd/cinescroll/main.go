// Command cinescroll runs the scroll-driven scene in a window, replays
// scripted input headlessly and talks to the contact relay.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
