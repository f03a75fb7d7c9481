// Rowperf analyzes the timing behavior of a bank of memory rows that are
// periodically rewritten in bulk and need a settling delay after each write.
package main

func main() {
	Execute()
}
