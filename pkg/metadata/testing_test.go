package metadata_test

// fixtureJSON lists vendors in non-alphabetical order: the last-defined
// emoji vendor is OpenMoji while Twemoji sorts last.
const fixtureJSON = `{
  "emojis": {
    "Twemoji": {
      "name": "Twemoji",
      "attribution": "Graphics by Twitter",
      "license_name": "CC BY 4.0",
      "license_url": "https://creativecommons.org/licenses/by/4.0/",
      "url": "https://github.com/twitter/twemoji"
    },
    "Noto": {
      "name": "Noto Emoji",
      "attribution": "Noto Emoji by Google",
      "license_name": "Apache 2.0",
      "license_url": "https://www.apache.org/licenses/LICENSE-2.0",
      "url": "https://github.com/googlefonts/noto-emoji"
    },
    "OpenMoji": {
      "name": "OpenMoji",
      "attribution": "All emojis designed by <a href=\"https://openmoji.org/\">OpenMoji</a>",
      "license_name": "CC BY-SA 4.0",
      "license_url": "https://creativecommons.org/licenses/by-sa/4.0/",
      "url": "https://openmoji.org/"
    }
  },
  "icons": {
    "Lucide": {
      "name": "Lucide",
      "attribution": "Lucide contributors",
      "license_name": "ISC",
      "license_url": "https://lucide.dev/license",
      "url": "https://lucide.dev/"
    },
    "Feather": {
      "name": "Feather",
      "attribution": "Feather by Cole Bemis",
      "license_name": "MIT",
      "license_url": "https://github.com/feathericons/feather/blob/main/LICENSE",
      "url": "https://feathericons.com/"
    }
  }
}`
