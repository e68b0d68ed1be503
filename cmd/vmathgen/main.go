// vmathgen emits the destination-form (*Into) fan-out for package vmath.
//
// Every value-form operation listed in the tables below gets a generated
// counterpart that writes into a caller-supplied destination and returns the
// same pointer. Run via `go generate ./vmath`; output lands next to the
// value forms as <kind>_generated.go.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// op is one value-form operation. Params are single-name declarations
// ("b Vec2[T]", "scale T"); Out is the result kind without type arguments.
type op struct {
	Name   string
	Params []string
	Out    string
}

// kindTable describes one entity kind: its destination-form methods and the
// package-level constructors that get an Into variant.
type kindTable struct {
	Kind    string // receiver type without type arguments
	RecvVar string // receiver variable in the value forms
	File    string // output file name
	Methods []op
	Funcs   []op
}

var tables = []kindTable{
	{
		Kind: "Vec2", RecvVar: "a", File: "vec2_generated.go",
		Methods: []op{
			{"Add", []string{"b Vec2[T]"}, "Vec2"},
			{"AddScaled", []string{"b Vec2[T]", "scale T"}, "Vec2"},
			{"Sub", []string{"b Vec2[T]"}, "Vec2"},
			{"Mul", []string{"b Vec2[T]"}, "Vec2"},
			{"Div", []string{"b Vec2[T]"}, "Vec2"},
			{"Scale", []string{"s T"}, "Vec2"},
			{"DivScale", []string{"s T"}, "Vec2"},
			{"Inverse", nil, "Vec2"},
			{"Negate", nil, "Vec2"},
			{"Ceil", nil, "Vec2"},
			{"Floor", nil, "Vec2"},
			{"Round", nil, "Vec2"},
			{"Clamp", []string{"lo T", "hi T"}, "Vec2"},
			{"Min", []string{"b Vec2[T]"}, "Vec2"},
			{"Max", []string{"b Vec2[T]"}, "Vec2"},
			{"Lerp", []string{"b Vec2[T]", "t T"}, "Vec2"},
			{"LerpV", []string{"b Vec2[T]", "t Vec2[T]"}, "Vec2"},
			{"Cross", []string{"b Vec2[T]"}, "Vec3"},
			{"Normalize", nil, "Vec2"},
			{"SetLength", []string{"l T"}, "Vec2"},
			{"Truncate", []string{"maxLen T"}, "Vec2"},
			{"Midpoint", []string{"b Vec2[T]"}, "Vec2"},
			{"Rotate", []string{"center Vec2[T]", "rad T"}, "Vec2"},
			{"TransformMat3", []string{"m Mat3[T]"}, "Vec2"},
			{"TransformMat4", []string{"m Mat4[T]"}, "Vec2"},
		},
		Funcs: []op{
			{"Vec2Random", []string{"scale T"}, "Vec2"},
		},
	},
	{
		Kind: "Vec3", RecvVar: "a", File: "vec3_generated.go",
		Methods: []op{
			{"Add", []string{"b Vec3[T]"}, "Vec3"},
			{"AddScaled", []string{"b Vec3[T]", "scale T"}, "Vec3"},
			{"Sub", []string{"b Vec3[T]"}, "Vec3"},
			{"Mul", []string{"b Vec3[T]"}, "Vec3"},
			{"Div", []string{"b Vec3[T]"}, "Vec3"},
			{"Scale", []string{"s T"}, "Vec3"},
			{"DivScale", []string{"s T"}, "Vec3"},
			{"Inverse", nil, "Vec3"},
			{"Negate", nil, "Vec3"},
			{"Ceil", nil, "Vec3"},
			{"Floor", nil, "Vec3"},
			{"Round", nil, "Vec3"},
			{"Clamp", []string{"lo T", "hi T"}, "Vec3"},
			{"Min", []string{"b Vec3[T]"}, "Vec3"},
			{"Max", []string{"b Vec3[T]"}, "Vec3"},
			{"Lerp", []string{"b Vec3[T]", "t T"}, "Vec3"},
			{"LerpV", []string{"b Vec3[T]", "t Vec3[T]"}, "Vec3"},
			{"Cross", []string{"b Vec3[T]"}, "Vec3"},
			{"Normalize", nil, "Vec3"},
			{"SetLength", []string{"l T"}, "Vec3"},
			{"Truncate", []string{"maxLen T"}, "Vec3"},
			{"Midpoint", []string{"b Vec3[T]"}, "Vec3"},
			{"RotateX", []string{"center Vec3[T]", "rad T"}, "Vec3"},
			{"RotateY", []string{"center Vec3[T]", "rad T"}, "Vec3"},
			{"RotateZ", []string{"center Vec3[T]", "rad T"}, "Vec3"},
			{"TransformMat3", []string{"m Mat3[T]"}, "Vec3"},
			{"TransformMat4", []string{"m Mat4[T]"}, "Vec3"},
			{"TransformMat4Upper3x3", []string{"m Mat4[T]"}, "Vec3"},
			{"TransformQuat", []string{"q Quat[T]"}, "Vec3"},
		},
		Funcs: []op{
			{"Vec3Random", []string{"scale T"}, "Vec3"},
		},
	},
	{
		Kind: "Vec4", RecvVar: "a", File: "vec4_generated.go",
		Methods: []op{
			{"Add", []string{"b Vec4[T]"}, "Vec4"},
			{"AddScaled", []string{"b Vec4[T]", "scale T"}, "Vec4"},
			{"Sub", []string{"b Vec4[T]"}, "Vec4"},
			{"Mul", []string{"b Vec4[T]"}, "Vec4"},
			{"Div", []string{"b Vec4[T]"}, "Vec4"},
			{"Scale", []string{"s T"}, "Vec4"},
			{"DivScale", []string{"s T"}, "Vec4"},
			{"Inverse", nil, "Vec4"},
			{"Negate", nil, "Vec4"},
			{"Ceil", nil, "Vec4"},
			{"Floor", nil, "Vec4"},
			{"Round", nil, "Vec4"},
			{"Clamp", []string{"lo T", "hi T"}, "Vec4"},
			{"Min", []string{"b Vec4[T]"}, "Vec4"},
			{"Max", []string{"b Vec4[T]"}, "Vec4"},
			{"Lerp", []string{"b Vec4[T]", "t T"}, "Vec4"},
			{"LerpV", []string{"b Vec4[T]", "t Vec4[T]"}, "Vec4"},
			{"Normalize", nil, "Vec4"},
			{"SetLength", []string{"l T"}, "Vec4"},
			{"Truncate", []string{"maxLen T"}, "Vec4"},
			{"Midpoint", []string{"b Vec4[T]"}, "Vec4"},
			{"TransformMat4", []string{"m Mat4[T]"}, "Vec4"},
		},
	},
	{
		Kind: "Mat3", RecvVar: "m", File: "mat3_generated.go",
		Methods: []op{
			{"Negate", nil, "Mat3"},
			{"Transpose", nil, "Mat3"},
			{"Inverse", nil, "Mat3"},
			{"Mul", []string{"n Mat3[T]"}, "Mat3"},
			{"SetTranslation", []string{"v Vec2[T]"}, "Mat3"},
			{"SetAxis", []string{"v Vec2[T]", "axis int"}, "Mat3"},
			{"Translate", []string{"v Vec2[T]"}, "Mat3"},
			{"Rotate", []string{"rad T"}, "Mat3"},
			{"Scale", []string{"v Vec2[T]"}, "Mat3"},
			{"UniformScale", []string{"s T"}, "Mat3"},
			{"GetTranslation", nil, "Vec2"},
			{"GetAxis", []string{"axis int"}, "Vec2"},
			{"GetScaling", nil, "Vec2"},
		},
		Funcs: []op{
			{"Mat3Identity", nil, "Mat3"},
			{"Mat3FromMat4", []string{"m Mat4[T]"}, "Mat3"},
			{"Mat3FromQuat", []string{"q Quat[T]"}, "Mat3"},
			{"Mat3Translation", []string{"v Vec2[T]"}, "Mat3"},
			{"Mat3Rotation", []string{"rad T"}, "Mat3"},
			{"Mat3RotationX", []string{"rad T"}, "Mat3"},
			{"Mat3RotationY", []string{"rad T"}, "Mat3"},
			{"Mat3RotationZ", []string{"rad T"}, "Mat3"},
			{"Mat3Scaling", []string{"v Vec2[T]"}, "Mat3"},
			{"Mat3UniformScaling", []string{"s T"}, "Mat3"},
		},
	},
	{
		Kind: "Mat4", RecvVar: "m", File: "mat4_generated.go",
		Methods: []op{
			{"Negate", nil, "Mat4"},
			{"Transpose", nil, "Mat4"},
			{"Inverse", nil, "Mat4"},
			{"Mul", []string{"n Mat4[T]"}, "Mat4"},
			{"SetTranslation", []string{"v Vec3[T]"}, "Mat4"},
			{"SetAxis", []string{"v Vec3[T]", "axis int"}, "Mat4"},
			{"Translate", []string{"v Vec3[T]"}, "Mat4"},
			{"RotateX", []string{"rad T"}, "Mat4"},
			{"RotateY", []string{"rad T"}, "Mat4"},
			{"RotateZ", []string{"rad T"}, "Mat4"},
			{"AxisRotate", []string{"axis Vec3[T]", "rad T"}, "Mat4"},
			{"Scale", []string{"v Vec3[T]"}, "Mat4"},
			{"UniformScale", []string{"s T"}, "Mat4"},
			{"GetTranslation", nil, "Vec3"},
			{"GetAxis", []string{"axis int"}, "Vec3"},
			{"GetScaling", nil, "Vec3"},
		},
		Funcs: []op{
			{"Mat4Identity", nil, "Mat4"},
			{"Mat4FromMat3", []string{"m Mat3[T]"}, "Mat4"},
			{"Mat4FromQuat", []string{"q Quat[T]"}, "Mat4"},
			{"Mat4Translation", []string{"v Vec3[T]"}, "Mat4"},
			{"Mat4RotationX", []string{"rad T"}, "Mat4"},
			{"Mat4RotationY", []string{"rad T"}, "Mat4"},
			{"Mat4RotationZ", []string{"rad T"}, "Mat4"},
			{"AxisRotation", []string{"axis Vec3[T]", "rad T"}, "Mat4"},
			{"Mat4Scaling", []string{"v Vec3[T]"}, "Mat4"},
			{"Mat4UniformScaling", []string{"s T"}, "Mat4"},
			{"Perspective", []string{"fovY T", "aspect T", "zNear T", "zFar T"}, "Mat4"},
			{"Ortho", []string{"left T", "right T", "bottom T", "top T", "near T", "far T"}, "Mat4"},
			{"Frustum", []string{"left T", "right T", "bottom T", "top T", "near T", "far T"}, "Mat4"},
			{"LookAt", []string{"eye Vec3[T]", "target Vec3[T]", "up Vec3[T]"}, "Mat4"},
			{"Aim", []string{"position Vec3[T]", "target Vec3[T]", "up Vec3[T]"}, "Mat4"},
			{"CameraAim", []string{"eye Vec3[T]", "target Vec3[T]", "up Vec3[T]"}, "Mat4"},
		},
	},
	{
		Kind: "Quat", RecvVar: "a", File: "quat_generated.go",
		Methods: []op{
			{"Mul", []string{"b Quat[T]"}, "Quat"},
			{"RotateX", []string{"rad T"}, "Quat"},
			{"RotateY", []string{"rad T"}, "Quat"},
			{"RotateZ", []string{"rad T"}, "Quat"},
			{"Slerp", []string{"b Quat[T]", "t T"}, "Quat"},
			{"Sqlerp", []string{"b Quat[T]", "c Quat[T]", "d Quat[T]", "t T"}, "Quat"},
			{"Conjugate", nil, "Quat"},
			{"Inverse", nil, "Quat"},
			{"Add", []string{"b Quat[T]"}, "Quat"},
			{"Sub", []string{"b Quat[T]"}, "Quat"},
			{"Scale", []string{"s T"}, "Quat"},
			{"DivScale", []string{"s T"}, "Quat"},
			{"Negate", nil, "Quat"},
			{"Lerp", []string{"b Quat[T]", "t T"}, "Quat"},
			{"Normalize", nil, "Quat"},
		},
		Funcs: []op{
			{"QuatIdentity", nil, "Quat"},
			{"QuatFromAxisAngle", []string{"axis Vec3[T]", "rad T"}, "Quat"},
			{"QuatFromEuler", []string{"x T", "y T", "z T", "order RotationOrder"}, "Quat"},
			{"QuatFromMat3", []string{"m Mat3[T]"}, "Quat"},
			{"QuatFromMat4", []string{"m Mat4[T]"}, "Quat"},
			{"RotationTo", []string{"from Vec3[T]", "to Vec3[T]"}, "Quat"},
		},
	},
}

func paramNames(params []string) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = strings.Fields(p)[0]
	}
	return names
}

func emit(kt kindTable) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by vmathgen. DO NOT EDIT.\n\npackage vmath\n")

	for _, m := range kt.Methods {
		args := strings.Join(paramNames(m.Params), ", ")
		sig := strings.Join(append(append([]string{}, m.Params...),
			fmt.Sprintf("dst *%s[T]", m.Out)), ", ")
		fmt.Fprintf(&buf, "\n// %sInto writes %s.%s(%s) into dst and returns dst.\n",
			m.Name, kt.RecvVar, m.Name, args)
		fmt.Fprintf(&buf, "func (%s %s[T]) %sInto(%s) *%s[T] {\n",
			kt.RecvVar, kt.Kind, m.Name, sig, m.Out)
		fmt.Fprintf(&buf, "\t*dst = %s.%s(%s)\n\treturn dst\n}\n", kt.RecvVar, m.Name, args)
	}

	for _, f := range kt.Funcs {
		args := strings.Join(paramNames(f.Params), ", ")
		sig := strings.Join(append(append([]string{}, f.Params...),
			fmt.Sprintf("dst *%s[T]", f.Out)), ", ")
		fmt.Fprintf(&buf, "\n// %sInto writes %s(%s) into dst and returns dst.\n",
			f.Name, f.Name, args)
		fmt.Fprintf(&buf, "func %sInto[T Float](%s) *%s[T] {\n", f.Name, sig, f.Out)
		fmt.Fprintf(&buf, "\t*dst = %s[T](%s)\n\treturn dst\n}\n", f.Name, args)
	}

	return buf.Bytes()
}

func main() {
	dir := flag.String("dir", ".", "directory to write generated files into")
	flag.Parse()

	for _, kt := range tables {
		path := filepath.Join(*dir, kt.File)
		src, err := imports.Process(path, emit(kt), nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vmathgen: format %s: %v\n", kt.File, err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "vmathgen: %v\n", err)
			os.Exit(1)
		}
	}
}
