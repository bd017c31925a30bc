package main

import "github.com/atman1234/peak-nutrition-ai-sub000/cmd/peaknut"

func main() {
	peaknut.Execute()
}
