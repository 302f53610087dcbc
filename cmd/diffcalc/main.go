// Command diffcalc rates charts with any archived star rating and pp revision.
package main

import (
	"log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("diffcalc: %v", err)
	}
}
