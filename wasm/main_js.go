//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/voxoid0/vox-file/api"
	"github.com/voxoid0/vox-file/vox"
)

func bytesArg(args []js.Value) []byte {
	buf := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(buf, args[0])
	return buf
}

func toUint8Array(b []byte) js.Value {
	uint8arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(uint8arr, b)
	return uint8arr
}

func voxInfo(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	s, err := api.Summarize(bytesArg(args), vox.DefaultOptions())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	out, err := json.Marshal(s)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(string(out))
}

func vox2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	out, err := api.VoxToGLB(bytesArg(args), vox.DefaultOptions(), api.DefaultGLBOptions())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

func vox2pack(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	comp := vox.PackCompZstd
	if len(args) > 1 {
		c, err := vox.ParsePackCompression(args[1].String())
		if err != nil {
			return js.ValueOf(err.Error())
		}
		comp = c
	}
	out, err := api.VoxToPack(bytesArg(args), vox.DefaultOptions(), comp)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

func pack2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing pack bytes")
	}
	out, err := api.PackToGLB(bytesArg(args), api.DefaultGLBOptions())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

func main() {
	js.Global().Set("voxInfo", js.FuncOf(voxInfo))
	js.Global().Set("vox2glb", js.FuncOf(vox2glb))
	js.Global().Set("vox2pack", js.FuncOf(vox2pack))
	js.Global().Set("pack2glb", js.FuncOf(pack2glb))
	select {}
}
