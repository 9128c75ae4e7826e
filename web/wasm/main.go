//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/pulse"
	"github.com/cwbudde/algo-comms/dsp/signal"
	"github.com/cwbudde/algo-comms/dsp/spectrum"
	"github.com/cwbudde/algo-comms/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var opts []webdemo.Option
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			opts = append(opts, webdemo.WithSeed(uint64(args[0].Int())))
		}
		e, err := webdemo.NewEngine(opts...)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("estimateCost", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		r, err := spectrum.EstimateCost(args[0].Int())
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("n", r.N)
		obj.Set("dft", r.DFTOperations)
		obj.Set("fft", r.FFTOperations)
		obj.Set("speedup", r.Speedup())
		return obj
	}))

	api.Set("sample", export(func(args []js.Value) any {
		if len(args) < 4 {
			return js.Null()
		}
		kind, err := signal.ParseKind(args[0].String())
		if err != nil {
			return err.Error()
		}
		p := signal.DefaultParams()
		if len(args) > 4 && args[4].Type() == js.TypeObject {
			o := args[4]
			p.Amplitude = floatOr(o.Get("amplitude"), p.Amplitude)
			p.Frequency = floatOr(o.Get("frequency"), p.Frequency)
			p.Phase = floatOr(o.Get("phase"), p.Phase)
			p.HalfWidth = floatOr(o.Get("halfWidth"), p.HalfWidth)
		}
		domain := core.Range{Min: args[1].Float(), Max: args[2].Float()}
		s, err := signal.Sample(kind, domain, args[3].Int(), p)
		if err != nil {
			return err.Error()
		}
		return seriesToJS(s)
	}))

	api.Set("raisedCosine", export(func(args []js.Value) any {
		p := pulse.DefaultParams()
		if len(args) > 0 {
			p.RollOff = args[0].Float()
		}
		if len(args) > 1 {
			p.SamplesPerSymbol = args[1].Int()
		}
		s, err := pulse.RaisedCosine(p)
		if err != nil {
			return err.Error()
		}
		return seriesToJS(s)
	}))

	api.Set("lfsrStep", export(func(_ []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		engine.LFSR().Step()
		return lfsrToJS(engine.LFSR())
	}))

	api.Set("lfsrReset", export(func(_ []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		if err := engine.Reset(webdemo.TopicPNSequence); err != nil {
			return err.Error()
		}
		return lfsrToJS(engine.LFSR())
	}))

	api.Set("setRunning", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		if err := engine.SetRunning(args[0].String(), args[1].Bool()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("tick", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return false
		}
		moved, err := engine.Tick(args[0].String())
		if err != nil {
			return err.Error()
		}
		return moved
	}))

	api.Set("reset", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		if err := engine.Reset(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("convolution", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		w := engine.Convolution()
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			w.SetOffset(args[0].Float())
		}
		x, err := w.Input()
		if err != nil {
			return err.Error()
		}
		h, err := w.Kernel()
		if err != nil {
			return err.Error()
		}
		y, err := w.Output()
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("offset", w.Offset())
		obj.Set("x", seriesToJS(x))
		obj.Set("h", seriesToJS(h))
		obj.Set("y", seriesToJS(y))
		return obj
	}))

	api.Set("poleZeroResponse", export(func(_ []js.Value) any {
		if engine == nil {
			return js.Global().Get("Float32Array").New(0)
		}
		resp, err := engine.PoleZero().Response()
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Float32Array").New(len(resp))
		for i, s := range resp {
			arr.SetIndex(i, s.Magnitude)
		}
		return arr
	}))

	api.Set("movePoint", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		w := engine.PoleZero()
		from := complex(args[0].Float(), args[1].Float())
		kind, idx, ok := w.Pick(from)
		if !ok || len(args) < 4 {
			return ok
		}
		if err := w.Move(kind, idx, complex(args[2].Float(), args[3].Float())); err != nil {
			return err.Error()
		}
		return true
	}))

	js.Global().Set("AlgoCommsDemo", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func floatOr(v js.Value, def float64) float64 {
	if v.Type() != js.TypeNumber {
		return def
	}
	return v.Float()
}

func seriesToJS(s core.Series) js.Value {
	xs := js.Global().Get("Float64Array").New(len(s))
	ys := js.Global().Get("Float64Array").New(len(s))
	for i, p := range s {
		xs.SetIndex(i, p.X)
		ys.SetIndex(i, p.Y)
	}
	obj := js.Global().Get("Object").New()
	obj.Set("x", xs)
	obj.Set("y", ys)
	return obj
}

func lfsrToJS(w *webdemo.LFSRWidget) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("state", w.State().String())
	hist := w.History()
	arr := js.Global().Get("Array").New(len(hist))
	for i, b := range hist {
		arr.SetIndex(i, int(b))
	}
	obj.Set("history", arr)
	return obj
}
