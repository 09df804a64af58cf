// Package files handles the on-disk side of a metadata write: input path
// normalization, output path derivation and copies that keep the source's
// permission bits and timestamps.
//
// # Output Locations
//
// Written images go to a "tagged" directory next to the input unless an
// output directory is given. For file writes the exact value "./tagged" is
// treated the same as an empty one; tensor writes take any non-empty
// directory literally. Because the derived directory is itself named "tagged",
// writing a file that already lives under a "tagged" directory would nest
// copies indefinitely; InTaggedDir lets callers refuse that case.
//
// # Usage
//
//	in := files.NormalizeInputPath(raw)
//	out, err := files.FileOutputPath(in, outputDir)
//	if err != nil {
//	    return err
//	}
//	if err := files.CopyPreserving(in, out); err != nil {
//	    return err
//	}
package files
