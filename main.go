// Public domain.

package main

import "github.com/soniakeys/aspects/internal/asprog"

func main() {
	asprog.Main()
}
