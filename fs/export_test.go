package fs

// VerifyFile exposes verifyFile to tests.
var VerifyFile = verifyFile
