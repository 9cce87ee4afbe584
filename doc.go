/*
Package svgavatar generates decorative SVG avatars from identifiers.

The identifier is hashed with SHA-256 and the digest drives everything else:
the hue of the whole avatar, the hue shift of every ring and the tone of each
of the eight pie slices a ring is made of. The same identifier always produces
the very same document, while different identifiers give visibly different avatars.

The package provides a command line interface too, to check the supported flags type:

	$ svgavatar --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/svgavatar"
	)

	func main() {
		avatar := svgavatar.NewBuilder().
			Identifier("foo").
			Rings(svgavatar.Three).
			Build()

		if err := avatar.Save("foo.svg"); err != nil {
			log.Fatalf("Error saving the avatar: %v", err)
		}
	}

If the avatars are shown on pages with both light and dark themes you probably
want to override the default "black" stroke color with Builder.StrokeColor.
*/
package svgavatar
