// Package numeric holds the arithmetic shared by the schemas: base-N digit
// accumulation into big integers, two's complement hex, base 60, narrowing
// to the smallest exact Go integer type and canonical float text.
package numeric
