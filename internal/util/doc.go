// Package util provides general utility.
package util

import (
	"fmt"
	"reflect"
)

// GenerateDoc prints the markdown documentation for the given config.
func GenerateDoc(config any) {
	fmt.Println("# Ferret")
	fmt.Println()
	fmt.Println("A fuzzy matching service: rank candidates against a pattern over a socket or from the commandline.")
	fmt.Println()
	fmt.Println("Run `ferret -h` to get an overview of the available commandline flags and actions.")
	fmt.Println()
	fmt.Println("## Configuration")
	fmt.Println()

	PrintConfig(config)
}

// PrintConfig prints a markdown table describing every koanf-tagged
// field of c, using the desc and default struct tags.
func PrintConfig(c any) {
	fmt.Println("| Field | Type | Default | Description |")
	fmt.Println("| --- | ---- | ---- | --- |")
	printStructDesc(c)
	fmt.Println()
}

func printStructDesc(c any) {
	val := reflect.ValueOf(c)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		fmt.Println("Not a struct")
		return
	}

	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		if field.Anonymous {
			printStructDesc(val.Field(i).Interface())
			continue
		}

		name := field.Tag.Get("koanf")
		if name == "" {
			continue
		}

		fmt.Printf("| %s | %s | %s | %s |\n", name, field.Type.Kind(), field.Tag.Get("default"), field.Tag.Get("desc"))
	}
}
