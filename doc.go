/*
go-lzw is an LZW compression library and command line tool. The codec works
on whole byte buffers: compressing yields an ordered sequence of fixed-width
codewords whose first element is the original byte length, and decompressing
a stream yields the exact original buffer.

Dictionaries

Compression and decompression build the same logical dictionary in two
different shapes. The compressor keeps a trie keyed by byte string so that
probing ever longer candidates stays proportional to the candidate length.
The decompressor keeps a growable table indexed by codeword, including the
reconstruction of entries that are referenced one step before they exist
(the classic KwKwK case). Codewords 0~255 are the single-byte strings,
codeword 256 is reserved and never assigned, dynamic entries start at 257.

Both dictionaries live for exactly one call. Concurrent calls are safe
because no state is shared between calls.

Package golzw

Most users only need the golzw package: Compress/Decompress work with
codeword streams, CompressToBytes/DecompressBytes add the little-endian
serialization used by the golzw tool. The engine packages underneath expose
the trie, the raw codec and a pluggable compressor interface (lzw, snappy,
flate, zlib) for embedding applications that want more control.

Command line

The golzw tool compresses and decompresses files:

	golzw compress file.txt        # writes file.txt.lzw
	golzw decompress file.txt.lzw  # writes file.txt

The tool reads golzw.ini for the compress format and log settings, see
golzw.ini.sample.
*/
package golzw
