package rigidbody

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/bodysim/internal/physics"
	"github.com/san-kum/bodysim/internal/scene"
	"github.com/san-kum/bodysim/internal/stream"
)

// spyConstraint counts lifecycle notifications.
type spyConstraint struct {
	id       uint64
	applied  int
	released int
}

func (c *spyConstraint) ApplyFrames()       { c.applied++ }
func (c *spyConstraint) ReleaseConstraint() { c.released++ }
func (c *spyConstraint) ObjectID() uint64   { return c.id }

var _ = Describe("lifecycle", func() {
	var (
		world     *fakeWorld
		transform *scene.Transform
		rb        *Body
	)

	BeforeEach(func() {
		world = newFakeWorld()
		transform = scene.NewTransform()
		collider := scene.NewCollider(physics.NewBox(1, 1, 1), mgl64.Vec3{})
		rb = New(transform, collider, world)
	})

	Describe("rebuild", func() {
		It("replaces the handle and keeps world membership", func() {
			old := rb.Handle()

			rb.SetMass(5)

			Expect(rb.Handle()).NotTo(BeIdenticalTo(old))
			Expect(rb.InWorld()).To(BeTrue())
			Expect(world.bodies).To(HaveLen(1))
		})

		It("reapplies frames on every attached constraint", func() {
			a := &spyConstraint{id: 1}
			b := &spyConstraint{id: 2}
			rb.AddConstraint(a)
			rb.AddConstraint(b)

			rb.SetMass(5)

			Expect(a.applied).To(Equal(1))
			Expect(b.applied).To(Equal(1))
			Expect(a.released).To(Equal(1))
			Expect(b.released).To(Equal(1))
		})

		It("restores the scene pose on the new handle", func() {
			transform.SetPosition(mgl64.Vec3{3, 4, 5})
			rb.SetPosition(mgl64.Vec3{3, 4, 5}, true)

			rb.SetKinematic(true)

			Expect(rb.Position().Sub(mgl64.Vec3{3, 4, 5}).Len()).To(BeNumerically("<", 1e-9))
		})
	})

	Describe("release", func() {
		It("notifies constraints and keeps them registered", func() {
			c := &spyConstraint{id: 7}
			rb.AddConstraint(c)

			rb.Close()

			Expect(c.released).To(Equal(1))
			Expect(rb.Handle()).To(BeNil())
			Expect(rb.Constraints()).To(HaveLen(1))
		})

		It("re-attaches surviving constraints on the next build", func() {
			c := &spyConstraint{id: 7}
			rb.AddConstraint(c)
			rb.Close()

			rb.SetShape(physics.NewBox(2, 2, 2))

			Expect(c.applied).To(Equal(1))
			Expect(rb.InWorld()).To(BeTrue())
		})

		It("is idempotent", func() {
			rb.Close()
			removes := world.removes

			rb.Close()

			Expect(world.removes).To(Equal(removes))
		})
	})

	Describe("constraint registry", func() {
		It("removes only the first matching entry", func() {
			a := &spyConstraint{id: 1}
			b := &spyConstraint{id: 1}
			c := &spyConstraint{id: 2}
			rb.AddConstraint(a)
			rb.AddConstraint(b)
			rb.AddConstraint(c)

			rb.RemoveConstraint(&spyConstraint{id: 1})

			Expect(rb.Constraints()).To(HaveLen(2))
			Expect(rb.Constraints()[0]).To(BeIdenticalTo(b))
			Expect(rb.Constraints()[1]).To(BeIdenticalTo(c))
		})

		It("ignores unregistered constraints", func() {
			rb.AddConstraint(&spyConstraint{id: 1})

			rb.RemoveConstraint(&spyConstraint{id: 99})

			Expect(rb.Constraints()).To(HaveLen(1))
		})

		It("wakes a dynamic body after removal", func() {
			rb.SetMass(1)
			rb.Handle().ForceActivationState(physics.StateSleeping)

			rb.RemoveConstraint(&spyConstraint{id: 1})

			Expect(rb.IsActive()).To(BeTrue())
		})
	})

	Describe("persistence", func() {
		It("round-trips the parameter block", func() {
			rb.SetMass(10)
			rb.SetFriction(0.3)
			rb.SetRestitution(0.2)
			rb.SetGravity(mgl64.Vec3{0, -9.8, 0})
			rb.SetPositionLock(mgl64.Vec3{0, 1, 0})

			var buf bytes.Buffer
			Expect(rb.Serialize(stream.NewWriter(&buf))).To(Succeed())

			other := New(scene.NewTransform(),
				scene.NewCollider(physics.NewBox(1, 1, 1), mgl64.Vec3{}), newFakeWorld())
			Expect(other.Deserialize(stream.NewReader(&buf))).To(Succeed())

			Expect(other.Mass()).To(Equal(10.0))
			Expect(other.Friction()).To(Equal(0.3))
			Expect(other.RollingFriction()).To(Equal(0.0))
			Expect(other.Restitution()).To(Equal(0.2))
			Expect(other.UseGravity()).To(BeTrue())
			Expect(other.Gravity()).To(Equal(mgl64.Vec3{0, -9.8, 0}))
			Expect(other.Kinematic()).To(BeFalse())
			Expect(other.PositionLock()).To(Equal(mgl64.Vec3{0, 1, 0}))
			Expect(other.InWorld()).To(BeTrue())
			Expect(other.Handle()).NotTo(BeNil())
			Expect(other.Handle().LinearFactor()).To(Equal(mgl64.Vec3{1, 0, 1}))
		})

		It("fails cleanly on a truncated stream", func() {
			other := New(scene.NewTransform(),
				scene.NewCollider(physics.NewBox(1, 1, 1), mgl64.Vec3{}), newFakeWorld())

			err := other.Deserialize(stream.NewReader(bytes.NewReader([]byte{1, 2})))

			Expect(err).To(HaveOccurred())
			Expect(other.InWorld()).To(BeTrue())
		})
	})
})
