package vicar

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

func Debug(arg interface{}) {
	spew.Dump(arg)
}

func JsonDump(v interface{}) {
	fmt.Println(StringIndent(v))
}

func StringIndent(v interface{}) string {
	result, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		panic(err)
	}
	return string(result)
}

// PrintKvp writes one key value pair to stdout. Nominally for
// validation and eyeballing labels.
func PrintKvp(kvp KeyValuePair, indent bool) {
	if indent {
		fmt.Print("    ")
	}
	if name, ok := kvp.Key.Name(); ok {
		fmt.Printf("%s: %s -> [%s] %s\n",
			kvp.Key.Type(), name, kvp.Value.Type(), kvp.Value.Raw())
	} else {
		fmt.Printf("%s\n", kvp.Key.Type())
	}
}

// PrintGrouping writes a GROUP or OBJECT block to stdout.
func PrintGrouping(g PropertyGrouping) {
	fmt.Println("***************************************")
	fmt.Printf("GROUPING: %s\n", g.Name())
	fmt.Printf("    TYPE: %s\n", g.TypeOf())
	for _, kvp := range g.Properties() {
		PrintKvp(kvp, true)
	}
	fmt.Println("    ** END GROUPING")
}

// PrintPvl writes a whole parsed document to stdout.
func PrintPvl(pvl *Pvl) {
	for _, p := range pvl.Properties {
		PrintKvp(p, false)
	}
	for _, g := range pvl.Groups {
		PrintGrouping(g)
	}
	for _, o := range pvl.Objects {
		PrintGrouping(o)
	}
}
