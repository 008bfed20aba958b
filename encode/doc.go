// Package encode renders ir trees as indented text, optionally colored.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "biome_name": ir.FromString("minecraft:plains"),
//	    "top_y":      ir.FromInt(64),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// with color
//	err = encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// produces
//
//	biome_name: "minecraft:plains"
//	top_y: 64
package encode
