// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"encoding/json"
	"fmt"
	"math"
)

func ExampleFloat64FromHex() {
	f, err := Float64FromHex("0x3FF0_0000_0000_0000")
	if err != nil {
		panic(err)
	}
	fmt.Printf("value = %v\n", f)

	c := Decompose64(f)
	fmt.Printf("sign = %d, significand = %d, exponent = %d\n", c.Sign, c.Significand, c.Exponent)

	data, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for components: %s\n", string(data))

	back, err := c.Float64()
	if err != nil {
		panic(err)
	}
	s, err := Float64Hex(back, HexOptions{Prefix: true, DelimitEvery: 2})
	if err != nil {
		panic(err)
	}
	fmt.Printf("round trip: %s", s)

	// Output:
	// value = 1
	// sign = 1, significand = 4503599627370496, exponent = 0
	// json for components: {"s":1,"m":4503599627370496,"e":0}
	// round trip: 0x3FF0_0000_0000_0000
}

func ExampleSplit() {
	fmt.Println(Split(2.0, false))
	fmt.Println(Split(-1.5, false))
	fmt.Println(Split(-1.5, true))

	// Output:
	// {2 0}
	// {-1 -0.5}
	// {-2 0.5}
}

func ExampleFloat64ToInt64() {
	const twoTo53Plus2 = 9007199254740994.0 // 2^53 + 2

	_, err := Float64ToInt64(twoTo53Plus2, ConvertOptions{})
	fmt.Println(err != nil)

	i, err := Float64ToInt64(twoTo53Plus2, ConvertOptions{ExtendedRange: true})
	if err != nil {
		panic(err)
	}
	fmt.Println(i)

	_, err = Float64ToInt64(2.5, ConvertOptions{PreventTruncation: true})
	fmt.Println(err != nil)

	// Output:
	// true
	// 9007199254740994
	// true
}

func ExampleDecompose64() {
	c := Decompose64(math.Inf(1))
	fmt.Println(c.Exponent == NonFiniteExponent64, c.Significand)

	c = Decompose64(math.SmallestNonzeroFloat64)
	fmt.Println(c.Exponent == MinExponent64, c.Significand)

	// Output:
	// true 0
	// true 1
}
