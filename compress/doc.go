// Package compress provides the codecs a rendered figure can be compressed
// with before it is written to disk.
//
// All codecs share one interface pair:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Every codec produces the stream format of its algorithm, so the output is
// readable by the matching command line tool:
//
//   - None: data is returned as-is
//   - Gzip: a gzip member, the encoding of ".svgz" files
//   - Zstd: a single Zstandard frame
//   - S2: an S2 stream (Snappy framing compatible)
//   - LZ4: an LZ4 frame
//
// Codecs are stateless values backed by pooled encoders and decoders, so a
// single codec is safe for concurrent use. Use GetCodec for the shared
// built-in instances:
//
//	codec, err := compress.GetCodec(format.CompressionGzip)
//	if err != nil {
//	    return err
//	}
//	svgz, err := codec.Compress(svg)
//
// CreateCodec returns a fresh codec instead of the shared one, and Measure
// compresses while reporting the resulting CompressionStats:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "figure")
//	out, stats, err := compress.Measure(codec, format.CompressionZstd, svg)
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
package compress
