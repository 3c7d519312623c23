package gamemath

// RayTest checks a ray from origin along dir (unit length) against a sphere
// of the given radius at center, using the closest point on the ray rather
// than a true sphere intersection. The returned projection is the distance
// along the ray to that closest point; targets behind the origin never hit.
func RayTest(origin, dir, center Vector3, radius float64) (proj float64, hit bool) {
	toCenter := center.Sub(origin)
	proj = toCenter.Dot(dir)
	if proj < 0 {
		return proj, false
	}
	closest := origin.Add(dir.Scale(proj))
	return proj, closest.Sub(center).Length() < radius
}
