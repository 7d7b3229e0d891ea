package render

import "io"

// RenderAll reads the full contents of a Renderer and returns the
// slice read. io.EOF is not returned as an error.
func RenderAll(r Renderer) ([]Triangle, error) {
	var err error
	var nt int
	result := make([]Triangle, 0, 1<<12)
	buf := make([]Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
