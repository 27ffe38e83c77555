package fourcc

//go:generate go run ./cmd/fourccgen codes.go

// Identifiers from common container formats. The constants are generated
// into codes_fourcc.go.

// RIFF (WAVE, AVI) chunk identifiers.
//
//fourcc:const ChunkRIFF "RIFF"
//fourcc:const ChunkList "LIST"
//fourcc:const ChunkFormat "fmt "
//fourcc:const ChunkData "data"
//fourcc:const FormWave "WAVE"

// ISO base media (MP4, QuickTime) atom types.
//
//fourcc:const AtomFileType "ftyp"
//fourcc:const AtomMovie "moov"
//fourcc:const AtomMediaData "mdat"

// Classic Mac OS file type and creator codes.
//
//fourcc:const TypeText "TEXT"
//fourcc:const CreatorApple "APPL"
