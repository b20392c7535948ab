package core

// HittableList is a flat group of hittables tested in order
type HittableList struct {
	objects []Hittable
	bbox    AABB
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Objects returns the list contents
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest hit among all objects, shrinking the search
// range as closer hits are found
func (l *HittableList) Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool) {
	var closest *HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, Interval{Min: rayT.Min, Max: closestSoFar}, sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of every object box, folded from the empty box
func (l *HittableList) BoundingBox() AABB {
	return l.bbox
}
