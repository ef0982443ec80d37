package learn

import "strings"

// TermEntry holds the built-in knowledge about one term, with an
// explanation per reader level.
type TermEntry struct {
	Full         string
	Beginner     string
	Intermediate string
	Advanced     string
}

// At returns the explanation for a level, falling back to the
// intermediate wording.
func (t TermEntry) At(level Level) string {
	switch level {
	case LevelBeginner:
		if t.Beginner != "" {
			return t.Beginner
		}
	case LevelAdvanced:
		if t.Advanced != "" {
			return t.Advanced
		}
	}
	return t.Intermediate
}

// termKnowledge is the built-in glossary for common document-scanning
// and machine-learning vocabulary. No lookup service is involved.
var termKnowledge = map[string]TermEntry{
	"OCR": {
		Full:         "Optical Character Recognition",
		Beginner:     "A technology that reads text from images, like how you photograph a receipt and it becomes editable text.",
		Intermediate: "Converts raster images of text into machine-readable character data using pattern recognition.",
		Advanced:     "Image-to-text conversion pipeline combining binarization, segmentation, feature extraction, and classification.",
	},
	"CNN": {
		Full:         "Convolutional Neural Network",
		Beginner:     "A type of AI brain that is especially good at recognizing patterns in images, inspired by how human eyes work.",
		Intermediate: "Deep learning architecture using sliding filter kernels to extract spatial features hierarchically.",
		Advanced:     "Feedforward network with learned convolutional filters, pooling, and fully-connected layers for spatial feature extraction.",
	},
	"NLP": {
		Full:         "Natural Language Processing",
		Beginner:     "Teaching computers to read, understand, and work with human language, both text and speech.",
		Intermediate: "Computational techniques for analyzing, understanding, and generating human language.",
		Advanced:     "Subfield of AI combining linguistics and ML for tasks like tokenization, parsing, NER, and language modeling.",
	},
	"NER": {
		Full:         "Named Entity Recognition",
		Beginner:     "AI that identifies important names in text: people, places, organizations, dates.",
		Intermediate: "NLP task that classifies tokens in text into predefined categories such as person, location, or organization.",
		Advanced:     "Sequence labeling task using IOB tagging schemes, often approached with CRF or transformer-based architectures.",
	},
	"LSTM": {
		Full:         "Long Short-Term Memory",
		Beginner:     "A type of AI that can remember things from earlier in a sentence to understand the full meaning.",
		Intermediate: "Recurrent neural network variant with gating mechanisms to preserve long-range dependencies.",
		Advanced:     "RNN architecture with input, forget, and output gates controlling information flow through memory cells.",
	},
	"PSM": {
		Full:         "Page Segmentation Mode",
		Beginner:     "A setting that tells Tesseract how to split up the image: is it one word, one line, or a full page?",
		Intermediate: "Tesseract parameter controlling how the engine segments text regions before recognition.",
		Advanced:     "Tesseract's PSM controls layout analysis from single character (PSM 10) to full auto-segment (PSM 3).",
	},
	"OEM": {
		Full:         "OCR Engine Mode",
		Beginner:     "Tells Tesseract which model to use: the older fast one or the newer smarter LSTM one.",
		Intermediate: "Tesseract parameter selecting between legacy engine, LSTM, or combined recognition modes.",
		Advanced:     "OEM 3 uses both legacy and LSTM engines with automatic selection; OEM 1 forces pure LSTM (Tesseract 4+).",
	},
	"CLAHE": {
		Full:         "Contrast Limited Adaptive Histogram Equalization",
		Beginner:     "A technique that makes dark images clearer by brightening them intelligently without washing out bright areas.",
		Intermediate: "Local contrast enhancement that applies histogram equalization in small tiles to handle uneven illumination.",
		Advanced:     "Adaptive HE variant that clips histogram peaks to limit noise amplification in uniform regions.",
	},
	"CER": {
		Full:         "Character Error Rate",
		Beginner:     "Measures how many letters the OCR got wrong. 0% is perfect, 100% means every letter is wrong.",
		Intermediate: "Ratio of character-level edit distance to reference length; standard OCR accuracy metric.",
		Advanced:     "Levenshtein distance at character level normalized by reference length; complements WER for fine-grained evaluation.",
	},
	"WER": {
		Full:         "Word Error Rate",
		Beginner:     "Like CER but counts whole wrong words instead of individual letters.",
		Intermediate: "Word-level edit distance normalized by reference word count.",
		Advanced:     "Standard ASR/OCR metric; computed as (substitutions + deletions + insertions) / reference words.",
	},
	"algorithm": {
		Beginner:     "A step-by-step recipe a computer follows to solve a problem, like a cooking recipe but for data.",
		Intermediate: "A defined sequence of operations for solving a computational problem with measurable complexity.",
		Advanced:     "Formal procedure with defined inputs, outputs, and time/space complexity characteristics.",
	},
	"pipeline": {
		Beginner:     "A series of steps where the output of one step automatically becomes the input of the next.",
		Intermediate: "Sequential processing chain where data flows through transformation stages.",
		Advanced:     "Directed acyclic graph of processing nodes optimized for throughput and latency.",
	},
	"preprocessing": {
		Beginner:     "Cleaning up data before the main work, like washing vegetables before cooking.",
		Intermediate: "Data cleaning and normalization steps applied before the primary analysis or modeling.",
		Advanced:     "Feature engineering and noise reduction to improve downstream model performance and convergence.",
	},
	"binarization": {
		Beginner:     "Converting a grey or coloured image to pure black-and-white so text stands out clearly.",
		Intermediate: "Thresholding operation that converts grayscale pixels to binary (0 or 1) values.",
		Advanced:     "Adaptive or global thresholding techniques including Otsu, Sauvola, and Niblack methods.",
	},
	"segmentation": {
		Beginner:     "Splitting an image into separate meaningful parts, like cutting a cake into slices.",
		Intermediate: "Partitioning an image or text stream into meaningful regions or units for analysis.",
		Advanced:     "Pixel-level classification or region proposal used in semantic, instance, or panoptic contexts.",
	},
	"tokenization": {
		Beginner:     "Breaking a sentence into individual words or pieces so a computer can analyze each one.",
		Intermediate: "Splitting text into tokens (words, subwords, or characters) as the first NLP processing step.",
		Advanced:     "Encoding scheme selection affects vocabulary size and out-of-vocabulary handling: BPE, WordPiece, SentencePiece.",
	},
	"normalization": {
		Beginner:     "Making data consistent, like converting all text to lowercase so \"Hello\" and \"hello\" are treated the same.",
		Intermediate: "Standardizing data to a common format or scale to reduce noise and improve comparability.",
		Advanced:     "Layer normalization, batch normalization, or text canonicalization depending on context.",
	},
	"confidence": {
		Beginner:     "How sure the model is about its answer. 95% confident means almost certain, 40% means it is guessing.",
		Intermediate: "Probability score assigned by a model to its predictions, indicating certainty level.",
		Advanced:     "Posterior probability from softmax output; calibration techniques align confidence with empirical accuracy.",
	},
	"fine-tuning": {
		Beginner:     "Taking a model that already knows a lot and training it more on your specific topic.",
		Intermediate: "Continuing to train a pre-trained model on domain-specific data to adapt it to a new task.",
		Advanced:     "Transfer learning technique adjusting pre-trained weights via low learning rate gradient updates.",
	},
}

// LookupTerm returns the built-in knowledge for a term, trying the
// exact form first and then the lowercase form.
func LookupTerm(term string) (TermEntry, bool) {
	if e, ok := termKnowledge[term]; ok {
		return e, true
	}
	e, ok := termKnowledge[strings.ToLower(term)]
	return e, ok
}
