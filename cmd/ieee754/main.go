// Command ieee754 converts numbers to and from IEEE 754 binary formats.
//
// The commands are
//
//	encode VALUE...    print the bit pattern of each value
//	decode PATTERN...  print the value of each bit pattern
//	round VALUE...     print each value rounded to the format
//	classify VALUE...  print the class of each value in the format
//	formats            print the table of known formats as YAML
//
// Every command takes the flags formats (a YAML file of additional
// formats) and v (log to stderr). The conversion commands also take
// format, the name of the format to convert with; it defaults to binary16.
package main

import "go.brendoncarroll.net/star"

func main() {
	star.Main(root)
}
