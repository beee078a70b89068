package audio

import "fmt"

// Exercise is one guided exercise narrated by the audio library.
type Exercise struct {
	// Key identifies the exercise in the manifest and on disk.
	Key string
	// Name is the display name spoken in the intro.
	Name string
	// Benefits is the one-line benefit spoken after the name.
	Benefits string
	// Instructions are the spoken steps, in order.
	Instructions []string
}

// Segment is one spoken unit of an exercise session.
type Segment struct {
	// Key names the segment in the manifest: intro, step_1..step_n, complete.
	Key string
	// Text is the sentence to speak.
	Text string
	// Style is the delivery instruction passed to the speech model.
	Style string
}

// Delivery styles per segment kind.
const (
	styleIntro    = "Speak clearly and professionally, with a calm and encouraging tone"
	styleStep     = "Speak clearly with good pacing, as if guiding someone through an exercise"
	styleComplete = "Speak with an encouraging and congratulatory tone"
)

// Segments expands the exercise into its spoken segments: an intro naming
// the exercise and its benefit, one step per instruction, and a completion
// message.
func (e Exercise) Segments() []Segment {
	segs := make([]Segment, 0, len(e.Instructions)+2)
	segs = append(segs, Segment{
		Key:   "intro",
		Text:  fmt.Sprintf("Starting %s. %s", e.Name, e.Benefits),
		Style: styleIntro,
	})
	for i, instruction := range e.Instructions {
		segs = append(segs, Segment{
			Key:   fmt.Sprintf("step_%d", i+1),
			Text:  fmt.Sprintf("Step %d: %s", i+1, instruction),
			Style: styleStep,
		})
	}
	segs = append(segs, Segment{
		Key:   "complete",
		Text:  "Great job! Exercise complete.",
		Style: styleComplete,
	})
	return segs
}

// Exercises is the full catalog, in the order the app presents them. The
// generated manifest and Swift helper follow this order.
var Exercises = []Exercise{
	{
		Key:      "chin_tuck",
		Name:     "Chin Tuck",
		Benefits: "Strengthens neck muscles and improves posture",
		Instructions: []string{
			"Keep your shoulders back and spine straight",
			"Without tilting your head, gently draw your chin backward",
			"Hold for 5 seconds, feeling a gentle stretch at the base of your skull",
			"Slowly release back to neutral position",
			"Repeat 3-5 times",
		},
	},
	{
		Key:      "chin_tuck_quick",
		Name:     "Quick Chin Tuck",
		Benefits: "Quick posture reset for your neck",
		Instructions: []string{
			"Pull chin straight back (not down)",
			"Hold for 5 seconds",
			"Release slowly",
			"Repeat 3 times",
		},
	},
	{
		Key:      "scapular_retraction",
		Name:     "Shoulder Blade Squeeze",
		Benefits: "Counteracts rounded shoulders from computer work",
		Instructions: []string{
			"Sit or stand with spine straight",
			"Pull your shoulder blades back and together",
			"Imagine trying to hold a pencil between your shoulder blades",
			"Hold for 5 seconds",
			"Release slowly",
			"Repeat 5-10 times",
		},
	},
	{
		Key:      "scapular_retraction_quick",
		Name:     "Quick Shoulder Reset",
		Benefits: "Instant shoulder alignment fix",
		Instructions: []string{
			"Squeeze shoulder blades together",
			"Hold for 5 seconds",
			"Release",
			"Repeat 3 times",
		},
	},
	{
		Key:      "doorway_stretch",
		Name:     "Doorway Chest Stretch",
		Benefits: "Opens chest and counteracts forward shoulder position",
		Instructions: []string{
			"Stand in a doorway with arms at 90 degrees",
			"Place forearms on door frame",
			"Step forward slowly until you feel a stretch across your chest",
			"Hold for 30 seconds",
			"Step back and relax",
			"Repeat 2-3 times",
		},
	},
	{
		Key:      "upper_trap_stretch",
		Name:     "Upper Trap Stretch",
		Benefits: "Relieves tension in neck and shoulders",
		Instructions: []string{
			"Sit or stand with good posture",
			"Tilt your head to one side, bringing ear toward shoulder",
			"Place hand on opposite side of head for gentle pressure",
			"Hold for 30 seconds",
			"Slowly return to center",
			"Repeat on other side",
		},
	},
	{
		Key:      "neck_rolls",
		Name:     "Gentle Neck Rolls",
		Benefits: "Improves neck mobility and reduces stiffness",
		Instructions: []string{
			"Start with your head centered and shoulders relaxed",
			"Slowly lower chin to chest",
			"Gently roll head to the right",
			"Continue rolling back (look at ceiling)",
			"Roll to the left side",
			"Return to starting position",
			"Repeat 2-3 times, then reverse direction",
		},
	},
	{
		Key:      "shoulder_rolls",
		Name:     "Shoulder Rolls",
		Benefits: "Releases shoulder tension and improves circulation",
		Instructions: []string{
			"Sit or stand with arms relaxed at your sides",
			"Lift shoulders up toward your ears",
			"Roll shoulders back in a circular motion",
			"Lower shoulders down",
			"Complete 5 rolls backward",
			"Reverse and do 5 rolls forward",
		},
	},
	{
		Key:      "thoracic_extension",
		Name:     "Thoracic Extension",
		Benefits: "Improves upper back mobility and reduces hunching",
		Instructions: []string{
			"Sit tall in your chair with feet flat on floor",
			"Place hands behind your head, elbows wide",
			"Gently arch your upper back over the chair",
			"Look slightly upward as you extend",
			"Hold for 5 seconds",
			"Return to neutral",
			"Repeat 5 times",
		},
	},
	{
		Key:      "low_back_flex",
		Name:     "Low Back Flexion",
		Benefits: "Relieves lower back tension",
		Instructions: []string{
			"Stand with feet hip-width apart",
			"Slowly bend forward from the hips",
			"Let arms hang toward the floor",
			"Hold for 10-15 seconds",
			"Slowly roll back up to standing",
		},
	},
	{
		Key:      "standing_hip_flexor",
		Name:     "Standing Hip Flexor Stretch",
		Benefits: "Loosens tight hip flexors from prolonged sitting",
		Instructions: []string{
			"Stand with one foot forward in a lunge position",
			"Keep back leg straight, front knee bent at 90 degrees",
			"Push hips forward gently",
			"Hold for 30 seconds",
			"Switch legs and repeat",
		},
	},
	{
		Key:      "squat_hip_extensions",
		Name:     "Squat Hip Extensions",
		Benefits: "Activates glutes and improves hip mobility",
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Perform a partial squat (45 degrees)",
			"Push through heels to stand",
			"Squeeze glutes at the top",
			"Repeat 10-15 times",
		},
	},
	{
		Key:      "standing_groin_stretch",
		Name:     "Standing Groin Stretch",
		Benefits: "Improves inner thigh flexibility",
		Instructions: []string{
			"Stand with feet wider than shoulder-width",
			"Shift weight to right side, bending right knee",
			"Keep left leg straight",
			"Hold for 20 seconds",
			"Return to center and switch sides",
		},
	},
	{
		Key:      "seated_glute_med_stretch",
		Name:     "Seated Glute Stretch",
		Benefits: "Relieves hip and glute tension",
		Instructions: []string{
			"Sit tall in your chair",
			"Cross right ankle over left knee",
			"Gently press down on right knee",
			"Lean forward slightly for deeper stretch",
			"Hold for 30 seconds",
			"Switch sides and repeat",
		},
	},
	{
		Key:      "gastrocnemius_stretch",
		Name:     "Calf Stretch (Gastrocnemius)",
		Benefits: "Stretches upper calf muscle",
		Instructions: []string{
			"Stand facing a wall, hands against wall",
			"Step right foot back, keeping heel on ground",
			"Keep back leg straight",
			"Lean forward until you feel calf stretch",
			"Hold for 30 seconds",
			"Switch legs",
		},
	},
	{
		Key:      "soleus_stretch",
		Name:     "Calf Stretch (Soleus)",
		Benefits: "Targets lower calf muscle",
		Instructions: []string{
			"Stand facing a wall, hands against wall",
			"Step right foot back",
			"Bend both knees slightly",
			"Keep back heel on ground",
			"Hold for 30 seconds",
			"Switch legs",
		},
	},
	{
		Key:      "toes_up_inversion_eversion",
		Name:     "Ankle Inversion/Eversion",
		Benefits: "Improves ankle stability and flexibility",
		Instructions: []string{
			"Sit with feet flat on floor",
			"Lift toes while keeping heels down",
			"Roll ankles inward (inversion)",
			"Roll ankles outward (eversion)",
			"Repeat 10 times each direction",
		},
	},
	{
		Key:      "plantar_dorsiflexion",
		Name:     "Ankle Pumps",
		Benefits: "Improves circulation and ankle mobility",
		Instructions: []string{
			"Sit or stand comfortably",
			"Point toes down (plantar flexion)",
			"Pull toes up toward shins (dorsiflexion)",
			"Hold each position for 2 seconds",
			"Repeat 15-20 times",
		},
	},
	{
		Key:      "ankle_circles",
		Name:     "Ankle Circles",
		Benefits: "Full range ankle mobility",
		Instructions: []string{
			"Sit with one leg extended",
			"Make slow circles with your foot",
			"Complete 10 circles clockwise",
			"Complete 10 circles counter-clockwise",
			"Switch feet and repeat",
		},
	},
	{
		Key:      "eye_exercise_20_20_20",
		Name:     "20-20-20 Rule",
		Benefits: "Reduces eye strain from screen time",
		Instructions: []string{
			"Look away from your screen",
			"Focus on something 20 feet away",
			"Hold your gaze for 20 seconds",
			"Blink several times to refresh",
		},
	},
	{
		Key:      "palming",
		Name:     "Eye Palming",
		Benefits: "Relaxes eye muscles and reduces strain",
		Instructions: []string{
			"Rub palms together to warm them",
			"Cup palms over closed eyes",
			"Don't press on eyeballs",
			"Breathe deeply and relax",
			"Hold for 30 seconds",
		},
	},
	{
		Key:      "deep_breathing",
		Name:     "Deep Breathing",
		Benefits: "Reduces stress and improves focus",
		Instructions: []string{
			"Sit comfortably with spine straight",
			"Breathe in slowly through nose for 4 counts",
			"Hold breath for 4 counts",
			"Exhale slowly through mouth for 6 counts",
			"Repeat 5-10 times",
		},
	},
}
