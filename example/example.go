package main

import (
	"bytes"
	"fmt"

	vec "github.com/facebookincubator/go-vecval"
)

func main() {
	a := vec.NewI32([]int32{1, 2, 3, 4})
	b := vec.NewI32([]int32{4, 3, 2, 1})

	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)

	// shift amounts are taken modulo the lane width, so 33 shifts by 1
	shifted, _ := a.LeftShift(vec.NewI32([]int32{33, 33, 33, 33}))
	fmt.Println(shifted)

	gt, _ := a.Compare(b, vec.SGT)
	fmt.Println(gt)

	// reading past the end is an error, never a panic
	if _, err := vec.Read(a, 4); err != nil {
		fmt.Println(err)
	}

	// narrow lanes bit pack when serialized
	flags := vec.NewBools([]bool{true, false, true, true, false})
	buf := bytes.NewBuffer([]byte{})
	flags.WriteTo(buf)
	fmt.Printf("%s serializes into %d bytes\n", flags, buf.Len())
}
