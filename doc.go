// Package apetag appends APEv2 tag blocks to media files.
//
// An APEv2 block is a 32-byte header, a run of item records, and a 32-byte
// footer. Each item carries a key and a string, number, or date value; numbers
// and dates are written as text. The block is appended to the end of the file
// and existing bytes are never rewritten.
//
// # Quick Start
//
// Tagging a file:
//
//	items, err := apetag.ParseTags([]string{"Artist=John Doe", "Track=7", "Year=2021"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := apetag.AppendFile("song.mp3", items)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("appended %d bytes\n", res.Bytes)
//
// Building items directly:
//
//	track, err := apetag.NewTagItem("Track", apetag.NumberValue(7))
//	year, err := apetag.NewTagItem("Year", apetag.DateValue(2021, 6, 0)) // "2021-06"
//
// # Supported Formats
//
//   - APE2: APE Tag, version 2 (2000)
//
// # Architecture
//
//	[AppendFile]       - Opens the file for appending
//	  └─ [registry]    - Looks up the writer for the tag format
//	      └─ [ape]     - Renders items, writes header, items, footer
//
// Keys given as text are matched case-insensitively against a fixed table
// (see Keys), which also decides whether a value is parsed as a string, a
// number, or a date.
//
// # Advanced Usage
//
// Tag several files concurrently:
//
//	results, err := apetag.AppendMany(ctx, items, paths)
//
// Keep a backup and check the block after writing:
//
//	res, err := apetag.AppendFile("song.mp3", items,
//		apetag.WithBackup(".bak"),
//		apetag.WithVerify(),
//		apetag.WithSync(),
//	)
//
// Write the block to any io.Writer:
//
//	var buf bytes.Buffer
//	block, err := apetag.Append(&buf, items)
//
// # Error Handling
//
// Errors are typed and match sentinels with errors.Is:
//
//   - ErrInvalidArgument: empty key, bad key bytes, or absent value
//   - ErrInvalidDate: a date that cannot be rendered
//   - ErrParse: a "key=value" argument that was rejected
//   - ErrIO: a failed or short write
//
// Appending is not transactional. When a write fails partway the file keeps a
// truncated block; WithBackup keeps a copy to restore from.
package apetag
