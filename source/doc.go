// Package source loads the byte sources that bitcode containers are parsed
// from.
//
// A Source is a random-access byte image of known length. Files are
// memory mapped where the platform allows it and read into memory
// otherwise. Inputs that start with the xz stream magic are decompressed
// transparently, so module.bc.xz parses the same as module.bc.
//
//	src, err := source.Open("module.bc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	f, err := src.Parse()
package source
