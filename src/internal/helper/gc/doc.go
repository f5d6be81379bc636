// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers built on [bytebufferpool] for
// I/O paths that read whole PEM files or assemble output bundles. The
// Buffer and Pool interfaces decouple callers from the underlying pool
// implementation.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
