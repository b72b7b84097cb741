// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndarray/internal/tensor"

// Backend is the execution policy tensor kernels run under.
// It names the backend and tells matmul and conv1d how far to fan out.
//
// Implementations:
//   - backend/cpu: Pure Go kernels with goroutine fan-out
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/tensor"
//	    "github.com/born-ml/ndarray/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	fmt.Println(x.Backend().Name()) // CPU
type Backend = tensor.Backend
